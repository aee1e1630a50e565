package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется при неверных учетных данных или отсутствии сессии.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда пользователь не владеет ресурсом.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов уникальности (повторный username/email).
	ErrConflict = errors.New("resource state conflict")

	// ErrSelfDeletion возвращается, когда администратор пытается удалить собственную учетную запись.
	ErrSelfDeletion = errors.New("cannot delete your own account")
)

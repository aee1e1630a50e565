package repository

import "context"

// Repositories объединяет репозитории, привязанные к одной транзакции
type Repositories struct {
	Users      UserRepository
	Activities ActivityRepository
	Questions  QuestionRepository
	Results    ResultRepository
}

// Transactor выполняет fn в одной транзакции БД.
// Ошибка из fn откатывает транзакцию и возвращается вызывающему.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}

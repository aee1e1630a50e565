package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/eduquiz-api/internal/domain/repository"
)

// Transactor реализует repository.Transactor поверх gorm-транзакций
type Transactor struct {
	db *gorm.DB
}

// NewTransactor создает Transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// NewRepositories строит набор репозиториев поверх db (соединения или транзакции)
func NewRepositories(db *gorm.DB) repository.Repositories {
	return repository.Repositories{
		Users:      NewUserRepo(db),
		Activities: NewActivityRepo(db),
		Questions:  NewQuestionRepo(db),
		Results:    NewResultRepo(db),
	}
}

// WithinTransaction выполняет fn в транзакции; ошибка или паника откатывают ее
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

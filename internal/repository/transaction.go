package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor выполняет функцию в транзакции, передавая её через контекст
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type transactor struct {
	db *gorm.DB
}

// NewTransactor создаёт новый экземпляр транзакционного менеджера
func NewTransactor(db *gorm.DB) Transactor {
	return &transactor{db: db}
}

// WithinTransaction открывает транзакцию или присоединяется к уже открытой в ctx.
// Ошибка fn откатывает транзакцию.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn возвращает соединение транзакции из ctx, если она есть
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

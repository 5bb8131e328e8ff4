package domain

import (
	"context"
	"fmt"
)

// SnapshotRepository хранит снимки состояния.
type SnapshotRepository interface {
	Upsert(ctx context.Context, key string, raw []byte) error
	LoadAll(ctx context.Context, fn func(key string, raw []byte) error) error
}

// SnapshotCache даёт быстрый доступ к последним снимкам.
type SnapshotCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, raw []byte)
}

// MessageSubscriber получает ответы бэкенда.
type MessageSubscriber interface {
	// Subscribe регистрирует обработчик; ack/повторные доставки реализует адаптер.
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}

// MessagePublisher отправляет запросы бэкенду.
type MessagePublisher interface {
	Publish(ctx context.Context, raw []byte) error
}

// Общие доменные ошибки
var (
	ErrNotFound   = notFoundError("not found")
	ErrValidation = validationError("invalid data")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }

// HttpError описывает ошибку бэкенда в том виде, в каком она хранится в состоянии и показывается UI.
type HttpError struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e *HttpError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("http %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

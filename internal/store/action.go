package store

import (
	"time"

	"github.com/google/uuid"
)

// Kind задаёт тег действия, например "[User] Login User".
type Kind string

// Action описывает намерение изменить состояние. Конкретные действия неизменяемы.
type Action interface {
	Kind() Kind
}

// RemoteRequest помечает действия, которые должны уйти во внешний бэкенд.
type RemoteRequest interface {
	Action
	RemoteRequest()
}

// Envelope хранит действие вместе с идентификатором и моментом диспетчеризации.
type Envelope struct {
	ID           uuid.UUID
	Action       Action
	DispatchedAt time.Time
}

func newEnvelope(a Action) Envelope {
	return Envelope{ID: uuid.New(), Action: a, DispatchedAt: time.Now()}
}

package natsstan

import (
	"context"
	"fmt"

	"github.com/example/storefront-state/internal/domain"
	stan "github.com/nats-io/stan.go"
)

// Publisher отправляет запросы бэкенду в subject NATS Streaming.
type Publisher struct {
	Conn    stan.Conn
	Subject string
}

// Connect открывает соединение для Publisher.
func Connect(clusterID, clientID, url string) (stan.Conn, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, fmt.Errorf("stan connect: %w", err)
	}
	return sc, nil
}

// Publish ждёт подтверждения сервера. Отменённый ctx сообщение не отправляет.
func (p *Publisher) Publish(ctx context.Context, raw []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.Conn.Publish(p.Subject, raw); err != nil {
		return fmt.Errorf("publish to %s: %w", p.Subject, err)
	}
	return nil
}

var _ domain.MessagePublisher = (*Publisher)(nil)

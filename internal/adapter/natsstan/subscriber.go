package natsstan

import (
	"context"
	"fmt"
	"time"

	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/logging"
	stan "github.com/nats-io/stan.go"
	"github.com/sirupsen/logrus"
)

const (
	defaultQueue          = "storefront-workers"
	defaultAckWait        = 10 * time.Second
	defaultHandlerTimeout = 5 * time.Second
)

// Subscriber получает ответы бэкенда из durable-очереди NATS Streaming.
// Сообщение подтверждается только после успешной обработки.
type Subscriber struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string
	Durable   string
	Queue     string

	AckWait        time.Duration
	HandlerTimeout time.Duration
	MaxInflight    int
}

// Subscribe подключается и регистрирует handler. Соединение закрывается по отмене ctx.
func (s *Subscriber) Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error {
	log := logging.NewLogger("natsstan").WithFields(logrus.Fields{"subject": s.Subject, "durable": s.Durable})

	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("storefront-sub-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL),
		stan.SetConnectionLostHandler(func(_ stan.Conn, reason error) {
			log.WithError(reason).Error("stan connection lost")
		}))
	if err != nil {
		return fmt.Errorf("stan connect: %w", err)
	}

	opts := []stan.SubscriptionOption{
		stan.DurableName(s.Durable),
		stan.SetManualAckMode(),
		stan.AckWait(orDefault(s.AckWait, defaultAckWait)),
		stan.DeliverAllAvailable(),
	}
	if s.MaxInflight > 0 {
		opts = append(opts, stan.MaxInflight(s.MaxInflight))
	}
	queue := s.Queue
	if queue == "" {
		queue = defaultQueue
	}
	timeout := orDefault(s.HandlerTimeout, defaultHandlerTimeout)

	if _, err := sc.QueueSubscribe(s.Subject, queue, func(m *stan.Msg) {
		deliver(ctx, log.WithField("seq", m.Sequence), timeout, m.Data, m.Ack, handler)
	}, opts...); err != nil {
		sc.Close()
		return fmt.Errorf("stan subscribe %s: %w", s.Subject, err)
	}
	log.Info("subscribed")

	go func() {
		<-ctx.Done()
		if err := sc.Close(); err != nil {
			log.WithError(err).Warn("stan close")
		}
	}()
	return nil
}

// deliver вызывает handler и подтверждает сообщение только при успехе;
// без подтверждения STAN переотправит его после AckWait.
func deliver(ctx context.Context, log *logrus.Entry, timeout time.Duration, data []byte, ack func() error,
	handler func(ctx context.Context, raw []byte) error) {
	hCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := handler(hCtx, data); err != nil {
		log.WithError(err).Warn("handler failed, message left for redelivery")
		return
	}
	if err := ack(); err != nil {
		log.WithError(err).Error("ack failed")
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}

var _ domain.MessageSubscriber = (*Subscriber)(nil)

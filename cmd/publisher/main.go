package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/example/storefront-state/internal/adapter/natsstan"
	"github.com/example/storefront-state/internal/config"
	"github.com/example/storefront-state/internal/logging"
	"github.com/example/storefront-state/internal/state"
	"github.com/example/storefront-state/internal/store"
)

// Публикует ответы бэкенда (действия в формате {"type","payload"}) из stdin в STAN_EVENT_SUBJECT.
func main() {
	log := logging.NewLogger("publisher")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	messages, err := readActions(os.Stdin, state.NewRegistry())
	if err != nil {
		log.WithError(err).Fatal("read actions from stdin")
	}

	conn, err := natsstan.Connect(cfg.ClusterID, getenv("STAN_PUB_ID", "storefront-publisher"), cfg.NATSURL)
	if err != nil {
		log.WithError(err).Fatal("stan connect")
	}
	defer conn.Close()

	pub := &natsstan.Publisher{Conn: conn, Subject: cfg.EventSubject}
	for _, b := range messages {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := pub.Publish(ctx, b)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("publish")
		}
	}
	log.WithField("subject", cfg.EventSubject).Infof("published %d actions", len(messages))
}

// readActions читает поток JSON-действий и приводит каждое к каноническому виду.
// Запросы к бэкенду отклоняются: сервис их не применяет.
func readActions(r io.Reader, reg *store.Registry) ([][]byte, error) {
	dec := json.NewDecoder(r)
	var out [][]byte
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		a, err := reg.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("action #%d: %w", len(out)+1, err)
		}
		if _, remote := a.(store.RemoteRequest); remote {
			return nil, fmt.Errorf("action #%d: %s is a backend request", len(out)+1, a.Kind())
		}
		b, err := store.Encode(a)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		return nil, errors.New("no actions on input")
	}
	return out, nil
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

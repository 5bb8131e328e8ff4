package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/logging"
	"github.com/example/storefront-state/internal/state"
	"github.com/example/storefront-state/internal/state/account"
	"github.com/example/storefront-state/internal/state/quoting"
	"github.com/example/storefront-state/internal/store"
)

// Dispatcher принимает действия. Обычно это стор витрины.
type Dispatcher interface {
	Dispatch(store.Action)
}

// StateSource отдаёт текущее состояние.
type StateSource interface {
	State() state.State
}

// SnapshotRecorder учитывает записи снимков.
type SnapshotRecorder interface {
	RecordSnapshot(slice string, err error)
}

// RestoreState восстанавливает срезы из снимков при старте одним действием Hydrate.
type RestoreState struct {
	Repo  domain.SnapshotRepository
	Cache domain.SnapshotCache
	Store Dispatcher
}

func (uc RestoreState) Execute(ctx context.Context) (state.Hydrate, error) {
	log := logging.NewLogger("usecase")
	var h state.Hydrate
	err := uc.Repo.LoadAll(ctx, func(key string, raw []byte) error {
		var err error
		switch key {
		case state.SliceAccount:
			var s account.State
			if err = json.Unmarshal(raw, &s); err == nil {
				h.Account = &s
			}
		case state.SliceQuoting:
			var s quoting.State
			if err = json.Unmarshal(raw, &s); err == nil {
				h.Quoting = &s
			}
		default:
			log.WithField("slice", key).Warn("unknown snapshot skipped")
			return nil
		}
		if err != nil {
			// пропускаем битые снимки, не прерывая восстановление
			log.WithError(err).WithField("slice", key).Warn("corrupted snapshot skipped")
			return nil
		}
		if uc.Cache != nil {
			uc.Cache.Set(key, raw)
		}
		return nil
	})
	if err != nil {
		return h, err
	}
	if h.Account != nil || h.Quoting != nil {
		uc.Store.Dispatch(h)
	}
	return h, nil
}

// PersistState сохраняет изменившиеся срезы в репозиторий и кэш.
type PersistState struct {
	Repo    domain.SnapshotRepository
	Cache   domain.SnapshotCache
	Metrics SnapshotRecorder
}

// Execute пишет только срезы, чей JSON отличается от последнего сохранённого.
func (uc PersistState) Execute(ctx context.Context, s state.State) error {
	slices := []struct {
		key   string
		value any
	}{
		{state.SliceAccount, s.Account},
		{state.SliceQuoting, s.Quoting},
	}
	var errs []error
	for _, sl := range slices {
		raw, err := json.Marshal(sl.value)
		if err != nil {
			errs = append(errs, fmt.Errorf("marshal %s: %w", sl.key, err))
			continue
		}
		if prev, ok := uc.Cache.Get(sl.key); ok && bytes.Equal(prev, raw) {
			continue
		}
		err = uc.Repo.Upsert(ctx, sl.key, raw)
		if uc.Metrics != nil {
			uc.Metrics.RecordSnapshot(sl.key, err)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		uc.Cache.Set(sl.key, raw)
	}
	return errors.Join(errs...)
}

// Run сохраняет состояние каждые interval и ещё раз при остановке.
func (uc PersistState) Run(ctx context.Context, src StateSource, interval time.Duration) {
	log := logging.NewLogger("usecase")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := uc.Execute(ctx, src.State()); err != nil {
				log.WithError(err).Error("persist state")
			}
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := uc.Execute(flushCtx, src.State()); err != nil {
				log.WithError(err).Error("final persist state")
			}
			cancel()
			return
		}
	}
}

// ProcessIncomingAction применяет действие, пришедшее от бэкенда.
type ProcessIncomingAction struct {
	Registry *store.Registry
	Store    Dispatcher
}

func (uc ProcessIncomingAction) Execute(ctx context.Context, raw []byte) error {
	a, err := uc.Registry.Decode(raw)
	if err != nil {
		return err
	}
	// бэкенд присылает только результаты, запросы от него не принимаем
	if _, ok := a.(store.RemoteRequest); ok {
		return fmt.Errorf("%w: %s is a request", domain.ErrValidation, a.Kind())
	}
	// срезы целиком заменяются только из снимков при старте
	if _, ok := a.(state.Hydrate); ok {
		return fmt.Errorf("%w: %s is not accepted from the backend", domain.ErrValidation, a.Kind())
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	uc.Store.Dispatch(a)
	return nil
}

// ForwardRecorder учитывает пересылку запросов.
type ForwardRecorder interface {
	RecordForwarded(kind store.Kind, err error)
}

// ForwardRequest пересылает запросы к бэкенду в очередь сообщений.
type ForwardRequest struct {
	Publisher domain.MessagePublisher
	Metrics   ForwardRecorder
	Timeout   time.Duration
}

// Handle пересылает запрос без цели; стор вызывает HandleState, если знает состояние.
func (uc ForwardRequest) Handle(ctx context.Context, env store.Envelope, _ func(store.Action)) {
	uc.forward(ctx, env, nil)
}

// HandleState дополняет запросы, действующие на выбранную котировку или запрос,
// их идентификатором из состояния сразу после применения действия.
func (uc ForwardRequest) HandleState(ctx context.Context, env store.Envelope, s state.State, _ func(store.Action)) {
	var target any
	if s.Quoting != nil {
		if t, ok := quoting.TargetOf(s.Quoting, env.Action); ok {
			target = t
		}
	}
	uc.forward(ctx, env, target)
}

func (uc ForwardRequest) forward(ctx context.Context, env store.Envelope, target any) {
	if _, ok := env.Action.(store.RemoteRequest); !ok {
		return
	}
	log := logging.NewLogger("usecase").WithField("action", env.Action.Kind())
	raw, err := store.EncodeWithTarget(env.Action, target)
	if err == nil {
		timeout := uc.Timeout
		if timeout == 0 {
			timeout = 5 * time.Second
		}
		pubCtx, cancel := context.WithTimeout(ctx, timeout)
		err = uc.Publisher.Publish(pubCtx, raw)
		cancel()
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordForwarded(env.Action.Kind(), err)
	}
	if err != nil {
		log.WithError(err).Error("forward request")
		return
	}
	log.WithField("id", env.ID).Debug("request forwarded")
}

var (
	_ store.Effect                   = ForwardRequest{}
	_ store.StateEffect[state.State] = ForwardRequest{}
)

// GetView отдаёт текущий срез состояния по имени.
type GetView struct {
	Source StateSource
}

func (uc GetView) Execute(slice string) (any, bool) {
	s := uc.Source.State()
	switch slice {
	case state.SliceAccount:
		return s.Account, true
	case state.SliceQuoting:
		return s.Quoting, true
	}
	return nil, false
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/storefront-state/internal/adapter/cache"
	"github.com/example/storefront-state/internal/adapter/httpapi"
	"github.com/example/storefront-state/internal/adapter/natsstan"
	"github.com/example/storefront-state/internal/adapter/repo"
	"github.com/example/storefront-state/internal/config"
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/facade"
	"github.com/example/storefront-state/internal/logging"
	"github.com/example/storefront-state/internal/metrics"
	"github.com/example/storefront-state/internal/state"
	"github.com/example/storefront-state/internal/store"
	"github.com/example/storefront-state/internal/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
	stan "github.com/nats-io/stan.go"
)

// App связывает хранилище состояния с его адаптерами.
type App struct {
	cfg     config.Config
	store   *facade.Store
	metrics *metrics.Collector
	repo    domain.SnapshotRepository
	cache   *cache.MemorySnapshotCache
	router  http.Handler

	pool *pgxpool.Pool
	conn stan.Conn
}

func main() {
	log := logging.NewLogger("server")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	app, err := buildApp(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("build app")
	}
	defer app.Close()

	if _, err := (usecase.RestoreState{Repo: app.repo, Cache: app.cache, Store: app.store}).Execute(ctx); err != nil {
		log.WithError(err).Fatal("restore state")
	}

	persistDone := make(chan struct{})
	go func() {
		defer close(persistDone)
		usecase.PersistState{Repo: app.repo, Cache: app.cache, Metrics: app.metrics}.Run(ctx, app.store, cfg.SnapshotInterval)
	}()

	go app.subscribeBackend(ctx)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: app.router}
	go func() {
		log.WithField("addr", srv.Addr).Info("http listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("http")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
	<-persistDone
	log.Info("stopped")
}

// buildApp собирает зависимости. Без DATABASE_URL снимки живут только в памяти,
// без доступного NATS запросы к бэкенду никуда не пересылаются.
func buildApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logging.NewLogger("server")
	app := &App{cfg: cfg, metrics: metrics.NewCollector(""), cache: cache.NewMemorySnapshotCache()}
	app.repo = app.cache

	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := repo.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		app.pool = pool
		app.repo = repo.NewPostgresSnapshotRepo(pool)
	} else {
		log.Warn("DATABASE_URL is empty, snapshots are kept in memory only")
	}

	opts := []store.Option{store.WithObserver(app.metrics), store.WithLogger(logging.NewLogger("store"))}
	if cfg.NATSURL != "" {
		conn, err := natsstan.Connect(cfg.ClusterID, cfg.ClientID+"-pub", cfg.NATSURL)
		if err != nil {
			log.WithError(err).Warn("stan connect, backend requests will not be forwarded")
		} else {
			app.conn = conn
			opts = append(opts, store.WithEffect(usecase.ForwardRequest{
				Publisher: &natsstan.Publisher{Conn: conn, Subject: cfg.RequestSubject},
				Metrics:   app.metrics,
			}))
		}
	}
	app.store = state.New(opts...)

	settings, err := config.LoadSettings(cfg.SettingsFile)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.router = httpapi.NewServer(httpapi.Deps{
		Account:        facade.NewAccountFacade(app.store),
		Quoting:        facade.NewQuotingFacade(app.store),
		Settings:       config.NewGlobalConfiguration(settings),
		View:           usecase.GetView{Source: app.store},
		Actions:        app.store.Actions(),
		Metrics:        app.metrics.Handler(),
		WriteRateLimit: cfg.WriteRateLimit,
	}).Router
	return app, nil
}

// subscribeBackend применяет ответы бэкенда к хранилищу.
func (a *App) subscribeBackend(ctx context.Context) {
	if a.cfg.NATSURL == "" {
		return
	}
	log := logging.NewLogger("server")
	uc := usecase.ProcessIncomingAction{Registry: state.NewRegistry(), Store: a.store}
	sub := &natsstan.Subscriber{
		ClusterID: a.cfg.ClusterID,
		ClientID:  a.cfg.ClientID + "-sub",
		URL:       a.cfg.NATSURL,
		Subject:   a.cfg.EventSubject,
		Durable:   a.cfg.Durable,
	}
	err := sub.Subscribe(ctx, func(ctx context.Context, raw []byte) error {
		err := uc.Execute(ctx, raw)
		a.metrics.RecordIncoming(err)
		return err
	})
	if err != nil {
		log.WithError(err).Error("stan subscribe")
	}
}

func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.conn != nil {
		_ = a.conn.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

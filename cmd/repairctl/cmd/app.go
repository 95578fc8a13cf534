package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dtroode/repairctl/internal/api/rest"
	"github.com/dtroode/repairctl/internal/config"
	"github.com/dtroode/repairctl/internal/guard"
	"github.com/dtroode/repairctl/internal/intake"
	"github.com/dtroode/repairctl/internal/logger"
	"github.com/dtroode/repairctl/internal/model"
	"github.com/dtroode/repairctl/internal/service"
	"github.com/dtroode/repairctl/internal/session"
	"github.com/dtroode/repairctl/internal/storage/memory"
	storage "github.com/dtroode/repairctl/internal/storage/minio"
	"github.com/dtroode/repairctl/internal/storage/redis"
	"github.com/dtroode/repairctl/internal/storage/sqlite"
	"github.com/dtroode/repairctl/internal/terminal"
	"github.com/dtroode/repairctl/internal/token"
)

// errReported is returned once the failure has already been shown to the user.
var errReported = errors.New("reported")

var (
	errNotLoggedIn = errors.New("you are not logged in")
	errForbidden   = errors.New("your account cannot use this command")
)

const redisNamespace = "repairctl:session"

type app struct {
	cfg       *config.Config
	logger    *logger.Logger
	notifier  *terminal.Notifier
	navigator *terminal.Navigator
	printer   *terminal.Printer

	manager   *session.Manager
	guard     *guard.Guard
	inspector *token.Inspector
	previews  model.PreviewStore
	registry  *prometheus.Registry
	metrics   *intake.Metrics

	auth   *service.Auth
	repair *service.Repair
	quote  *service.Quote
	review *service.Review
	admin  *service.Admin
	shop   *service.Shop

	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config, format terminal.Format, stdout, stderr io.Writer) (_ *app, err error) {
	a := &app{
		cfg:       cfg,
		logger:    logger.New(cfg.LogLevel),
		notifier:  terminal.NewNotifier(stderr),
		navigator: terminal.NewNavigator(stderr),
		printer:   terminal.NewPrinter(stdout, format),
		inspector: token.NewInspector(),
		registry:  prometheus.NewRegistry(),
	}
	defer func() {
		if err != nil {
			a.runClosers()
		}
	}()

	db, err := sqlite.NewConnection(ctx, cfg.Session.DurablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open durable session store: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	durable := sqlite.NewKVRepository(db)

	ephemeral, err := a.ephemeralTier(ctx)
	if err != nil {
		return nil, err
	}

	a.previews, err = a.previewStore(ctx)
	if err != nil {
		return nil, err
	}

	var manager *session.Manager
	client, err := rest.NewClient(cfg.API.BaseURL, a.logger,
		rest.WithTimeout(cfg.API.Timeout),
		rest.WithTokenSource(rest.TokenSourceFunc(func(ctx context.Context) string {
			return manager.Token(ctx)
		})),
		rest.WithUnauthorizedHook(func(ctx context.Context) {
			manager.ForceLogout(ctx)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	manager = session.NewManager(durable, ephemeral, client, a.navigator, a.logger,
		session.WithLogoutTimeout(cfg.Session.LogoutTimeout),
		session.WithNotifier(a.notifier),
		session.WithTokenInspector(a.inspector),
	)
	if _, err := manager.Bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	a.manager = manager
	a.guard = guard.New(manager)

	a.metrics = intake.NewMetrics(a.registry)

	a.auth = service.NewAuth(client, manager, a.notifier, a.logger)
	a.repair = service.NewRepair(client, a.notifier, a.logger)
	a.quote = service.NewQuote(client, a.notifier, a.logger)
	a.review = service.NewReview(client, a.notifier, a.logger)
	a.admin = service.NewAdmin(client, a.notifier, a.logger)
	a.shop = service.NewShop(client, a.notifier, a.logger)

	return a, nil
}

func (a *app) ephemeralTier(ctx context.Context) (model.KVStore, error) {
	if a.cfg.Session.EphemeralBackend != config.BackendRedis {
		return memory.NewKV(), nil
	}

	rc, err := redis.NewClient(ctx, a.cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ephemeral session store: %w", err)
	}
	a.closers = append(a.closers, rc.Close)
	return redis.NewKV(rc, redisNamespace, a.cfg.Redis.TTL), nil
}

func (a *app) previewStore(ctx context.Context) (model.PreviewStore, error) {
	if a.cfg.Preview.Backend != config.BackendMinio {
		return memory.NewPreviewStore(), nil
	}

	s := a.cfg.Storage
	mc, err := minio.New(s.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s.AccessKey, s.SecretKey, ""),
		Secure: s.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	client, err := storage.NewClient(ctx, mc, s.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize preview storage: %w", err)
	}
	return storage.NewPreviewStore(client), nil
}

// authorize checks that the current user may open path.
func (a *app) authorize(path string) error {
	o := a.guard.Resolve(path)
	switch o.Kind {
	case guard.Render:
		return nil
	case guard.Pending:
		return model.ErrNotBootstrapped
	}

	a.logger.Debug("CLI: access denied",
		"path", path,
		"redirect", o.Target)
	a.navigator.Navigate(o.Target)
	if o.Target == guard.PathLogin {
		return errNotLoggedIn
	}
	return errForbidden
}

// close waits for background logout calls, pushes metrics and releases resources.
func (a *app) close(ctx context.Context) error {
	a.manager.Wait()

	if a.cfg.Metrics.PushURL != "" {
		if err := intake.Push(ctx, a.cfg.Metrics.PushURL, a.cfg.Metrics.Job, a.registry); err != nil {
			a.logger.Warn("CLI: failed to push metrics",
				"url", a.cfg.Metrics.PushURL,
				"error", err.Error())
		}
	}
	return a.runClosers()
}

func (a *app) runClosers() error {
	var errs []error
	for _, c := range slices.Backward(a.closers) {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

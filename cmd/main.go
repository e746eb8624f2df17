package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"railway-reservation/config"
	"railway-reservation/internal/console"
	accountHandler "railway-reservation/internal/module/account/handler"
	accountEntity "railway-reservation/internal/module/account/models/entity"
	accountRepositories "railway-reservation/internal/module/account/repositories"
	accountUsecases "railway-reservation/internal/module/account/usecases"
	bookingHandler "railway-reservation/internal/module/booking/handler"
	bookingRepositories "railway-reservation/internal/module/booking/repositories"
	bookingUsecases "railway-reservation/internal/module/booking/usecases"
	catalogHandler "railway-reservation/internal/module/catalog/handler"
	catalogEntity "railway-reservation/internal/module/catalog/models/entity"
	catalogRepositories "railway-reservation/internal/module/catalog/repositories"
	catalogUsecases "railway-reservation/internal/module/catalog/usecases"
	"railway-reservation/internal/module/session"
	"railway-reservation/internal/pkg/database"
	"railway-reservation/internal/pkg/http"
	"railway-reservation/internal/pkg/lock"
	log_internal "railway-reservation/internal/pkg/log"
	"railway-reservation/internal/pkg/memstore"
	"railway-reservation/internal/pkg/messagestream"
	"railway-reservation/internal/pkg/middleware"
	"railway-reservation/internal/pkg/redis"
	router "railway-reservation/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type service struct {
	cfg      *config.Config
	zapLog   *otelzap.Logger
	logger   log_internal.Logger
	accounts accountUsecases.Usecase
	catalog  catalogUsecases.Usecase
	booking  bookingUsecases.Usecase
	handler  *bookingHandler.BookingHandler
	routers  []*message.Router
	closers  []func() error
}

func main() {
	cfg := config.InitConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := initService(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer svc.close()

	for _, r := range svc.routers {
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				svc.logger.Error(ctx, "message router stopped", err)
			}
		}(r)
		<-r.Running()
	}

	switch cfg.App.Mode {
	case config.ModeHTTP:
		err = svc.serveHTTP(ctx)
	default:
		// stdin reads do not observe ctx, so a signal ends the wait instead
		done := make(chan error, 1)
		go func() {
			done <- console.New(os.Stdin, os.Stdout, cfg.App.CurrencySymbol, svc.logger,
				svc.accounts, svc.catalog, svc.booking).Run(ctx)
		}()
		select {
		case err = <-done:
		case <-ctx.Done():
		}
	}
	if err != nil && ctx.Err() == nil {
		svc.logger.Error(ctx, "application stopped", err)
		svc.close()
		os.Exit(1)
	}
}

func initService(ctx context.Context, cfg *config.Config) (*service, error) {
	// init logger
	zapLog, err := log_internal.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, err
	}
	svc := &service{
		cfg:    cfg,
		zapLog: zapLog,
		logger: log_internal.New(zapLog),
	}
	svc.closers = append(svc.closers, func() error { _ = zapLog.Sync(); return nil })

	// init storage
	var (
		accountRepo accountRepositories.Repositories
		catalogRepo catalogRepositories.Repositories
		bookingRepo bookingRepositories.Repositories
	)
	if cfg.Database.Driver == config.DriverMemory {
		store := memstore.New()
		accountRepo = accountRepositories.NewMemory(store)
		catalogRepo = catalogRepositories.NewMemory(store)
		bookingRepo = bookingRepositories.NewMemory(store)
	} else {
		db, err := database.GetConnection(ctx, &cfg.Database)
		if err != nil {
			svc.close()
			return nil, err
		}
		svc.closers = append(svc.closers, db.Close)
		accountRepo = accountRepositories.New(db, svc.logger)
		catalogRepo = catalogRepositories.New(db, svc.logger)
		bookingRepo = bookingRepositories.New(db, svc.logger)
	}

	// init redis lock
	locker := lock.NewLocal()
	if cfg.Redis.Enabled() {
		client, err := redis.SetupClient(ctx, &cfg.Redis)
		if err != nil {
			svc.close()
			return nil, err
		}
		svc.closers = append(svc.closers, client.Close)
		locker = lock.NewRedis(client, cfg.Redis.LockExpiry)
	}

	// init message stream
	wmLogger := messagestream.NewLogger(zapLog.Logger)
	stream := messagestream.New(&cfg.MessageStream, wmLogger)

	publisher, err := stream.NewPublisher()
	if err != nil {
		svc.close()
		return nil, err
	}
	svc.closers = append(svc.closers, publisher.Close)

	subscriber, err := stream.NewSubscriber()
	if err != nil {
		svc.close()
		return nil, err
	}
	svc.closers = append(svc.closers, subscriber.Close)

	svc.accounts = accountUsecases.New(accountRepo, svc.logger)
	svc.catalog = catalogUsecases.New(catalogRepo, svc.logger)
	svc.booking = bookingUsecases.New(bookingRepo, svc.logger, publisher, locker, cfg.MessageStream.Topic)

	if cfg.App.SeedDemoData {
		if err := svc.accounts.SeedAccounts(ctx, accountEntity.DemoAccounts()); err != nil {
			svc.close()
			return nil, fmt.Errorf("seed accounts: %w", err)
		}
		if err := svc.catalog.SeedTrains(ctx, catalogEntity.DemoTrains()); err != nil {
			svc.close()
			return nil, fmt.Errorf("seed trains: %w", err)
		}
	}

	svc.handler = &bookingHandler.BookingHandler{
		Log:       zapLog,
		Validator: validator.New(),
		Usecase:   svc.booking,
	}

	consumeBookingEventRouter, err := messagestream.NewRouter(publisher, cfg.MessageStream.Topic+"_poisoned",
		"booking_event_handler", cfg.MessageStream.Topic, subscriber, svc.handler.ConsumeBookingEvent, wmLogger)
	if err != nil {
		svc.close()
		return nil, err
	}
	svc.routers = append(svc.routers, consumeBookingEventRouter)

	return svc, nil
}

func (s *service) serveHTTP(ctx context.Context) error {
	registry := session.NewRegistry()

	app := router.Initialize(http.SetupHttpEngine(s.zapLog), router.Handlers{
		Account: &accountHandler.AccountHandler{
			Log:       s.zapLog,
			Validator: s.handler.Validator,
			Usecase:   s.accounts,
			Sessions:  registry,
		},
		Catalog: &catalogHandler.CatalogHandler{
			Log:     s.zapLog,
			Usecase: s.catalog,
		},
		Booking: s.handler,
	}, &middleware.Middleware{
		Log:      s.zapLog,
		Sessions: registry,
	})

	s.logger.Info(ctx, fmt.Sprintf("http server listening on :%s", s.cfg.HttpServer.Port))
	return http.StartHttpServer(ctx, app, s.cfg.HttpServer.Port)
}

// close releases resources in reverse order of acquisition. It is safe to
// call more than once.
func (s *service) close() {
	for _, r := range s.routers {
		_ = r.Close()
	}
	s.routers = nil
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
	s.closers = nil
}

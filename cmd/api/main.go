package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sanosuguru/go-cinema-booking/internal/api"
	"github.com/sanosuguru/go-cinema-booking/internal/api/handler"
	"github.com/sanosuguru/go-cinema-booking/internal/api/middleware"
	"github.com/sanosuguru/go-cinema-booking/internal/application"
	"github.com/sanosuguru/go-cinema-booking/internal/config"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/theatre"
	"github.com/sanosuguru/go-cinema-booking/internal/infrastructure/messaging"
	"github.com/sanosuguru/go-cinema-booking/internal/infrastructure/postgres"
	redisinfra "github.com/sanosuguru/go-cinema-booking/internal/infrastructure/redis"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/metrics"
	"github.com/sanosuguru/go-cinema-booking/internal/worker"
)

func main() {
	if err := run(); err != nil {
		logger.Error("アプリケーションが異常終了しました", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Init(cfg.App.Env, cfg.App.LogLevel)
	defer func() { _ = logger.Sync() }()

	m := metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// データベース接続（初回はスキーマを作成する）
	db, err := postgres.OpenOrCreate(ctx, &cfg.Database, cfg.Booking.SchemaVersion)
	if err != nil {
		return fmt.Errorf("データベース初期化に失敗しました: %w", err)
	}
	defer db.Close()
	log.Info("データベース接続完了", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	// Redis はロックとキャッシュにのみ使う。接続できなくても起動は続ける
	var (
		lockManager redisinfra.LockManagerInterface
		cache       redisinfra.ScheduleCacheInterface
	)
	if cfg.Redis.Enabled {
		client, err := redisinfra.NewClient(&redisinfra.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("Redisに接続できないためロックとキャッシュなしで起動します", zap.Error(err))
		} else {
			defer client.Close()
			lockManager = redisinfra.NewLockManager(client, m)
			cache = redisinfra.NewScheduleCache(client, cfg.Booking.ScheduleCacheTTL)
			log.Info("Redis接続完了", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	// リポジトリ
	txManager := postgres.NewTxManager(db)
	locker := postgres.NewAdvisoryLocker()
	theatreRepo := postgres.NewTheatreRepository(db)
	showRepo := postgres.NewShowRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	movieRepo := postgres.NewMovieRepository(db)

	// メッセージング
	wmLogger := logger.NewWatermillAdapter(log)
	subscriber, err := messaging.NewSubscriber(db, wmLogger)
	if err != nil {
		return fmt.Errorf("サブスクライバー作成に失敗しました: %w", err)
	}
	if err := messaging.InitializeSchema(subscriber); err != nil {
		return fmt.Errorf("メッセージスキーマ初期化に失敗しました: %w", err)
	}
	publisher := messaging.NewOutboxPublisher(wmLogger)
	router, err := messaging.NewRouter(subscriber, messaging.NewReceiptHandler(nil, m), wmLogger)
	if err != nil {
		return fmt.Errorf("ルーター作成に失敗しました: %w", err)
	}

	// サービス
	seeder, err := application.NewSeederService(txManager, locker, theatreRepo, showRepo, cache, seedData(cfg.Booking))
	if err != nil {
		return err
	}
	if _, err := seeder.SeedTheatres(ctx); err != nil {
		return fmt.Errorf("劇場のシードに失敗しました: %w", err)
	}

	bookingOpts := application.BookingOptions{
		UnitPrice: cfg.Booking.UnitPrice,
		Lock: application.LockOptions{
			TTL:        cfg.Booking.LockTTL,
			Retries:    cfg.Booking.LockRetries,
			RetryDelay: cfg.Booking.LockRetryDelay,
		},
	}
	inventory := application.NewInventoryService(showRepo, bookingRepo, cache)
	booking := application.NewBookingService(txManager, bookingRepo, paymentRepo, publisher, lockManager, m, bookingOpts)
	payments := application.NewPaymentService(txManager, paymentRepo, publisher, m, cfg.Booking.UnitPrice)
	catalog := application.NewCatalogService(movieRepo, m)

	// HTTP
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	middleware.SetupMiddleware(e, m)

	handler.RegisterRoutes(e, handler.Handlers{
		Health:   handler.NewHealthHandler(db),
		Schedule: handler.NewScheduleHandler(seeder, inventory),
		Seat:     handler.NewSeatHandler(inventory),
		Booking:  handler.NewBookingHandler(booking),
		Payment:  handler.NewPaymentHandler(payments),
		Catalog:  handler.NewCatalogHandler(catalog),
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), middleware.MetricsBasicAuth(cfg.Metrics))
	if !middleware.AuthEnabled(cfg.Metrics) {
		log.Warn("METRICS_USER が未設定のため /metrics は認証なしで公開されます")
	}

	compactor := worker.NewCatalogCompactor(catalog, cfg.Worker.CompactInterval)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return router.Run(gctx)
	})

	g.Go(func() error {
		// イベント処理の準備ができてからリクエストを受け付ける
		select {
		case <-router.Running():
		case <-gctx.Done():
			return nil
		}
		log.Info("サーバー起動", zap.String("port", cfg.Server.Port), zap.String("env", cfg.App.Env))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("サーバー起動エラー: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		compactor.Start(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("サーバーをシャットダウンしています...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := e.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("サーバーシャットダウンエラー: %w", err))
		}
		if err := router.Close(); err != nil {
			errs = append(errs, fmt.Errorf("ルーター停止エラー: %w", err))
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("サーバーが正常にシャットダウンしました")
	return nil
}

func seedData(cfg config.BookingConfig) application.SeedData {
	roster := make([]theatre.Theatre, 0, len(cfg.Theatres))
	for _, t := range cfg.Theatres {
		roster = append(roster, theatre.New(t.Name, t.Location))
	}
	return application.SeedData{Theatres: roster, TimeSlots: cfg.TimeSlots}
}

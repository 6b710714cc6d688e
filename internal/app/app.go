package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/starsbot/internal/bot"
	"github.com/GlebRadaev/starsbot/internal/broadcast"
	"github.com/GlebRadaev/starsbot/internal/config"
	"github.com/GlebRadaev/starsbot/internal/handlers"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/GlebRadaev/starsbot/internal/repo"
	"github.com/GlebRadaev/starsbot/internal/scheduler"
	"github.com/GlebRadaev/starsbot/internal/service"
	"github.com/GlebRadaev/starsbot/pkg/auth"
	"github.com/GlebRadaev/starsbot/pkg/clients"
	"github.com/GlebRadaev/starsbot/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	bot   *bot.Bot
	pool  *broadcast.WorkerPool
	sched *scheduler.Scheduler
	db    *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if cfg.BotToken == "" {
		return errors.New("BOT_TOKEN is not set")
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.cfg = cfg
	a.db = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, jwtService)
	a.api = handlers.New(a.srv, cfg, jwtService)

	if err = a.startBot(ctx); err != nil {
		return fmt.Errorf("can't start bot: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err = a.startScheduler(ctx); err != nil {
		return fmt.Errorf("can't start scheduler: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startBot(ctx context.Context) error {
	api, err := tgbotapi.NewBotAPIWithClient(a.cfg.BotToken, tgbotapi.APIEndpoint, clients.NewHTTPClient())
	if err != nil {
		return err
	}

	a.pool = broadcast.NewWorkerPool(a.cfg.BroadcastWorkers)
	a.bot = bot.New(api, api.Self.UserName, a.cfg, bot.Services{
		Users:       a.srv.UserService,
		Rewards:     a.srv.RewardService,
		Withdrawals: a.srv.WithdrawalService,
		Promos:      a.srv.PromoService,
		Shop:        a.srv.ShopService,
		Duels:       a.srv.DuelService,
		Posts:       a.srv.PostService,
		Stats:       a.srv.StatsService,
		Settings:    a.srv.SettingsService,
	}, broadcast.New(a.pool))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.bot.Run(ctx)
		a.bot.Wait()
		a.pool.Close()
	}()

	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address(),
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) error {
	sched, err := scheduler.New(a.srv.SettingsService, a.srv.StatsService)
	if err != nil {
		return err
	}
	if err := sched.Start(ctx); err != nil {
		return err
	}
	a.sched = sched

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		if err := a.sched.Shutdown(); err != nil {
			zap.L().Warn("scheduler shutdown", zap.Error(err))
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.db != nil {
		a.db.Close()
	}

	return appErr
}

package main // Entry point package

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/config"
	"github.com/iliyamo/car-rental-web/internal/database"
	"github.com/iliyamo/car-rental-web/internal/handler"
	"github.com/iliyamo/car-rental-web/internal/layout"
	"github.com/iliyamo/car-rental-web/internal/metrics"
	"github.com/iliyamo/car-rental-web/internal/middleware"
	"github.com/iliyamo/car-rental-web/internal/notification"
	"github.com/iliyamo/car-rental-web/internal/queue"
	"github.com/iliyamo/car-rental-web/internal/repository"
	"github.com/iliyamo/car-rental-web/internal/router"
	queue_publisher "github.com/iliyamo/car-rental-web/internal/service"
	"github.com/iliyamo/car-rental-web/internal/session"
	"github.com/iliyamo/car-rental-web/internal/utils"
	"github.com/iliyamo/car-rental-web/internal/view"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.NewRedisClient() // nil disables page cache and rate limit
	if rdb != nil {
		defer rdb.Close()
	}

	client := api.New(cfg.APIBaseURL, cfg.BackendTimeout)
	authRepo := repository.NewAuthRepo(client)
	carRepo := repository.NewCarRepo(client)
	promoRepo := repository.NewPromoRepo(client)
	profileRepo := repository.NewProfileRepo(client)

	var publisher *queue_publisher.Publisher
	if cfg.SessionEventsEnabled {
		publisher = queue_publisher.NewPublisher(cfg.AMQPURL)
		defer publisher.Close()
	}
	observe := func(tr session.Transition) {
		metrics.Session(tr.Kind)
		if publisher != nil {
			publisher.Observe(tr)
		}
	}
	if cfg.JWTVerifySecret == "" {
		log.Printf("session: JWT_VERIFY_SECRET not set, credentials are decoded without signature checks")
	}
	sessions := session.NewManager(
		utils.NewDecoder(cfg.JWTVerifySecret),
		session.WithTTLs(cfg.AccessTTL, cfg.RefreshTTL),
		session.WithObserver(observe),
	)

	uiStore := layout.NewUIStore(cfg.SessionSecret, cfg.CookieSecure)
	notes := notification.NewRegistry(nil)
	go notes.RunSweeper(ctx, time.Minute, cfg.NotificationIdle)

	if cfg.SessionEventsConsumer {
		sink, closeSink := eventSink(ctx, cfg)
		defer closeSink()
		go func() {
			if err := queue.StartSessionConsumer(ctx, cfg.AMQPURL, sink); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("session-consumer: stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.MustNew()
	e.Validator = handler.NewFormValidator()
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Session(sessions, cfg.CookieSecure))
	e.Use(middleware.UIState(uiStore))
	e.Use(middleware.InFlight())
	e.Static("/static", "static")

	shells := &handler.Shells{Breakpoint: cfg.DesktopBreakpoint, Notifications: notes}
	shell := middleware.ShellNavigation(uiStore)

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(carRepo, cfg.SiteURL), middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterAuth(e, handler.NewAuthHandler(authRepo, notes, uiStore), middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterUI(e, handler.NewLayoutHandler(uiStore, cfg.DesktopBreakpoint), handler.NewNotificationHandler(notes))
	router.RegisterCustomer(e, handler.NewCustomerHandler(shells, profileRepo, promoRepo), shell)
	router.RegisterAdmin(e, handler.NewAdminHandler(shells), shell)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, backend=%s)", addr, cfg.Env, client.BaseURL())
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// eventSink picks where consumed session events go: MySQL when DB_HOST is
// configured and reachable, otherwise logs/session.log.
func eventSink(ctx context.Context, cfg config.Config) (queue.Sink, func()) {
	if cfg.DBHost == "" {
		return queue.NewFileSink(""), func() {}
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Printf("session-consumer: mysql unavailable, writing logs/session.log: %v", err)
		return queue.NewFileSink(""), func() {}
	}
	store, err := database.NewSessionEventStore(ctx, db)
	if err != nil {
		log.Printf("session-consumer: %v; writing logs/session.log", err)
		_ = db.Close()
		return queue.NewFileSink(""), func() {}
	}
	return store, func() { closeDB(db) }
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Printf("mysql: close: %v", err)
	}
}

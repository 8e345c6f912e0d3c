package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/docs"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/auth"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/ratelimiter"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/service"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type dataStore interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type cookAPI interface {
	CreateCook(ctx context.Context, userID string, in service.CreateCookInput) (*domain.Cook, error)
	GetCook(ctx context.Context, cookID primitive.ObjectID) (*domain.Cook, error)
}

type offerAPI interface {
	CreateOffer(ctx context.Context, userID string, in service.CreateOfferInput) (*domain.DishOffer, error)
	GetOffer(ctx context.Context, offerID primitive.ObjectID) (*domain.DishOffer, error)
	ListCookOffers(ctx context.Context, cookID primitive.ObjectID, lang prepready.Language) ([]service.OfferListing, error)
	PreviewReadyTime(ctx context.Context, offerID primitive.ObjectID, lang prepready.Language) (prepready.Preview, error)
	PreviewConfig(cfg prepready.Config, countryCode string, lang prepready.Language) prepready.Preview
	UpdateOfferStatus(ctx context.Context, offerID primitive.ObjectID, newStatus, reason, userID string) error
	GetOfferAudit(ctx context.Context, offerID primitive.ObjectID, userID string, limit int) ([]domain.OfferStatusAudit, error)
}

type importAPI interface {
	CreateImportTask(ctx context.Context, userID, spreadsheetID string) (*domain.OfferImportTask, error)
	GetTaskStatus(ctx context.Context, taskID primitive.ObjectID, userID string) (*domain.OfferImportTask, error)
}

type orderAPI interface {
	PlaceOrder(ctx context.Context, customerID string, in service.PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID primitive.ObjectID, customerID string) (*domain.Order, error)
}

type notificationAPI interface {
	ListCookNotifications(ctx context.Context, cookID primitive.ObjectID, userID string, limit int) ([]domain.Notification, error)
}

type backgroundWorker interface {
	Start() error
	Stop()
}

type application struct {
	config              config
	logger              *zap.SugaredLogger
	rateLimiter         ratelimiter.Limiter
	authenticator       auth.Authenticator
	storage             dataStore
	broker              queue.Broker
	cookService         cookAPI
	offerService        offerAPI
	importService       importAPI
	orderService        orderAPI
	notificationService notificationAPI
	workers             []backgroundWorker
	shutdownTracing     func(context.Context) error
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	googleCreds string
	authTokens  string
	otel        otelConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type otelConfig struct {
	endpoint string
	insecure bool
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Post("/ready-time/preview", app.readyTimePreviewHandler)

		r.Route("/cooks", func(r chi.Router) {
			r.With(app.AuthTokenMiddleware).Post("/", app.createCookHandler)

			r.Route("/{cook_id}", func(r chi.Router) {
				r.Get("/", app.getCookHandler)
				r.Get("/offers", app.listCookOffersHandler)
				r.With(app.AuthTokenMiddleware).Get("/notifications", app.listCookNotificationsHandler)
			})
		})

		r.Route("/offers", func(r chi.Router) {
			r.With(app.AuthTokenMiddleware).Post("/", app.createOfferHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/import", app.createImportTaskHandler)
				r.Get("/import/{task_id}", app.getImportTaskHandler)
			})

			r.Route("/{offer_id}", func(r chi.Router) {
				r.Get("/", app.getOfferHandler)
				r.Get("/ready-time", app.getOfferReadyTimeHandler)
				r.With(app.AuthTokenMiddleware).Patch("/status", app.updateOfferStatusHandler)
				r.With(app.AuthTokenMiddleware).Get("/audit", app.getOfferAuditHandler)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Post("/", app.placeOrderHandler)
			r.Get("/{order_id}", app.getOrderHandler)
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return otelhttp.NewHandler(r, "marketplace-api")
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Home Cook Marketplace"
	docs.SwaggerInfo.Description = "Dish offers, orders and authoritative ready times"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	for _, w := range app.workers {
		if err := w.Start(); err != nil {
			return fmt.Errorf("failed to start worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		for _, w := range app.workers {
			w.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		if app.shutdownTracing != nil {
			if err := app.shutdownTracing(ctx); err != nil {
				app.logger.Errorw("error flushing traces", "error", err)
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

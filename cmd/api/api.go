package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grlla/docs" //this is required to serve the swagger doc
	"grlla/internal/auth"
	"grlla/internal/catalog"
	"grlla/internal/checkout"
	"grlla/internal/i18n"
	"grlla/internal/mailer"
	"grlla/internal/orders"
	"grlla/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	store         *catalog.Store
	loader        *catalog.Loader
	bundle        *i18n.Bundle
	lang          *i18n.Switcher
	checkout      *checkout.Client
	mailer        mailer.Client
	refs          *orders.ReferenceGenerator
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	frontendURL string
	catalog     catalogConfig
	order       orderConfig
	mail        mailConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type catalogConfig struct {
	src      string
	pageSize int
}

type orderConfig struct {
	// endpoint is the opaque external order collector; 2xx means accepted.
	endpoint string
	refSalt  string
}

type mailConfig struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	// coach inbox that receives order notifications
	notifyName  string
	notifyEmail string
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret string
	exp    time.Duration
	iss    string
}

type basicConfig struct {
	user string
	pass string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(app.RateLimiterMiddleware)
	r.Use(app.LanguageMiddleware)

	//Set a timeout value on the request context (ctx), so that handlers stop
	//processing once the request has been abandoned
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/supplements", func(r chi.Router) {
			r.Get("/", app.listSupplementsHandler)
			r.Get("/detail", app.getSupplementHandler) // GET /supplements/detail?product={url}
			r.Get("/categories", app.listCategoriesHandler)
			r.Get("/showcase", app.homeShowcaseHandler)
		})

		r.Get("/packages", app.listPackagesHandler)
		r.Get("/faq", app.listFAQHandler)
		r.Get("/testimonials", app.listTestimonialsHandler)

		r.Route("/language", func(r chi.Router) {
			r.Get("/", app.getLanguageHandler)
			r.Post("/toggle", app.toggleLanguageHandler)
		})

		r.Post("/orders", app.createOrderHandler)

		r.Route("/admin", func(r chi.Router) {
			r.With(app.BasicAuthMiddleware()).Post("/token", app.createAdminTokenHandler)
			r.With(app.AdminTokenMiddleware).Post("/catalog/reload", app.reloadCatalogHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

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

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

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

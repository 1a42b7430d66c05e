package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"grlla/internal/auth"
	"grlla/internal/catalog"
	"grlla/internal/checkout"
	"grlla/internal/i18n"
	"grlla/internal/mailer"
	"grlla/internal/orders"
	"grlla/internal/ratelimiter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 200
	defaultEnabled := false

	// Retrieve request count with error handling
	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	// Retrieve enabled flag with error handling
	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder // This adds color to log levels (INFO, WARN, ERROR)

	// Create a console encoder with the custom configuration
	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	// Create a log level (you can set your own level here)
	level := zapcore.InfoLevel

	// Use zapcore.NewCore to write logs to standard output (stdout) with color
	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	// Create and return a new logger instance
	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			GRLLA API
//	@description	API for the GRLLA fitness coaching site and supplement store.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	pageSize := catalog.DefaultPageSize
	if val, exists := os.LookupEnv("CATALOG_PAGE_SIZE"); exists {
		pageSize, err = strconv.Atoi(val)
		if err != nil {
			log.Fatalf("Invalid value for CATALOG_PAGE_SIZE: %v", err)
		}
	}

	smtpPort := 587
	if val, exists := os.LookupEnv("SMTP_PORT"); exists {
		smtpPort, err = strconv.Atoi(val)
		if err != nil {
			log.Fatalf("Invalid value for SMTP_PORT: %v", err)
		}
	}

	cfg := config{
		addr:        os.Getenv("ADDR"),
		env:         os.Getenv("ENV"),
		frontendURL: os.Getenv("FRONTEND_URL"),
		apiURL:      os.Getenv("EXTERNAL_URL"),
		catalog: catalogConfig{
			src:      os.Getenv("CATALOG_SRC"),
			pageSize: pageSize,
		},
		order: orderConfig{
			endpoint: os.Getenv("ORDER_ENDPOINT"),
			refSalt:  os.Getenv("ORDER_REF_SALT"),
		},
		mail: mailConfig{
			host:        os.Getenv("SMTP_HOST"),
			port:        smtpPort,
			username:    os.Getenv("SMTP_USERNAME"),
			password:    os.Getenv("SMTP_PASSWORD"),
			fromEmail:   os.Getenv("SMTP_FROM_EMAIL"),
			notifyName:  os.Getenv("ORDER_NOTIFY_NAME"),
			notifyEmail: os.Getenv("ORDER_NOTIFY_EMAIL"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			token: tokenConfig{
				secret: os.Getenv("AUTH_TOKEN_SECRET"),
				exp:    time.Hour * 24, // 1 day
				iss:    "GRLLA",
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	// Logger
	// Create the logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Translations
	bundle, err := i18n.Load()
	if err != nil {
		logger.Fatal(err)
	}

	// Catalog
	store := catalog.NewStore()
	loader := catalog.NewLoader(cfg.catalog.src)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	products, err := loader.Load(ctx)
	cancel()
	if err != nil {
		// The site still serves packages/FAQ/testimonials without a catalog.
		store.SetLoadError(err)
		logger.Warnw("catalog load failed, store browsing degraded", "src", cfg.catalog.src, "error", err)
	} else {
		store.SetProducts(products)
		logger.Infow("catalog loaded", "src", cfg.catalog.src, "products", len(products))
	}

	// Order notification mail (optional; skipped when SMTP is not configured)
	var mailClient mailer.Client
	if cfg.mail.host != "" {
		mailClient, err = mailer.NewSMTPClient(
			cfg.mail.host,
			cfg.mail.port,
			cfg.mail.username,
			cfg.mail.password,
			cfg.mail.fromEmail,
		)
		if err != nil {
			logger.Fatal(err)
		}
	} else {
		logger.Warn("SMTP_HOST not set, order notification mail disabled")
	}

	// Order references
	refs, err := orders.NewReferenceGenerator(cfg.order.refSalt)
	if err != nil {
		logger.Fatal(err)
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// Authenticator
	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.iss,
		cfg.auth.token.iss,
	)

	app := &application{
		config:        cfg,
		logger:        logger,
		store:         store,
		loader:        loader,
		bundle:        bundle,
		lang:          i18n.NewSwitcher(),
		checkout:      checkout.New(cfg.order.endpoint),
		mailer:        mailClient,
		refs:          refs,
		authenticator: jwtAuthenticator,
		rateLimiter:   rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("catalog_size", expvar.Func(func() any {
		return store.Len()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

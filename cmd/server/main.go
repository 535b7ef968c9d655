// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"therapy-paws/internal/common/config"
	"therapy-paws/internal/common/database"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/mail"
	"therapy-paws/internal/common/observability"
	"therapy-paws/internal/common/payments"
	"therapy-paws/internal/common/places"
	"therapy-paws/internal/common/storage"
	"therapy-paws/internal/common/web"
	"therapy-paws/pkg/catalog"

	ba "therapy-paws/internal/handlers/booking/book-appointment"
	san "therapy-paws/internal/handlers/booking/send-appointment-notification"
	scn "therapy-paws/internal/handlers/contact/send-contact-notification"
	sp "therapy-paws/internal/handlers/gallery/submit-photos"
	snl "therapy-paws/internal/handlers/newsletter/send-newsletter"
	sdc "therapy-paws/internal/handlers/notifications/send-donation-confirmation"
	soc "therapy-paws/internal/handlers/notifications/send-order-confirmation"
	cd "therapy-paws/internal/handlers/payments/create-donation"
	cp "therapy-paws/internal/handlers/payments/create-payment"
	vp "therapy-paws/internal/handlers/payments/verify-payment"
	al "therapy-paws/internal/handlers/places/address-lookup"
	sne "therapy-paws/internal/handlers/subscribers/send-notification-email"
	sub "therapy-paws/internal/handlers/subscribers/subscribe"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting server...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init External Service Clients ---
	checkout := payments.NewClient(cfg.Stripe)
	mailer := mail.NewSendGridMailer(cfg.SendGrid)

	signer, err := storage.NewS3Signer(ctx, cfg.Storage)
	if err != nil {
		zapLog.Fatal("s3 signer init failed", zap.Error(err))
	}

	resolver, err := places.NewGoogleResolver(cfg.Places)
	if err != nil {
		zapLog.Fatal("places resolver init failed", zap.Error(err))
	}

	productCatalog, err := catalog.LoadCatalog(cfg.Products.CatalogPath)
	if err != nil {
		zapLog.Fatal("product catalog load failed", zap.Error(err))
	}

	zapLog.Info("All external service clients initialized")

	// --- Build Services ---
	appointmentNotifier := san.NewService(san.LoadConfig(cfg), pg.DB, mailer, log)
	confirmationSender := sne.NewService(sne.LoadConfig(cfg), mailer, log)

	createDonation := cd.NewHandler(cd.NewService(cd.LoadConfig(cfg), checkout, log), log)
	createPayment := cp.NewHandler(cp.NewService(cp.LoadConfig(cfg), checkout, pg.DB, log), log)
	verifyPayment := vp.NewHandler(vp.NewService(vp.LoadConfig(cfg), checkout, pg.DB, signer, productCatalog, log), log)
	bookAppointment := ba.NewHandler(ba.NewService(pg.DB, appointmentNotifier, log), log)
	appointmentNotification := san.NewHandler(appointmentNotifier, log)
	contactNotification := scn.NewHandler(scn.NewService(scn.LoadConfig(cfg), pg.DB, mailer, log), log)
	notificationEmail := sne.NewHandler(confirmationSender, log)
	subscribeHandler := sub.NewHandler(sub.NewService(pg.DB, confirmationSender, log), log)
	sendNewsletter := snl.NewHandler(snl.NewService(snl.LoadConfig(cfg), pg.DB, mailer, log), log)
	submitPhotos := sp.NewHandler(sp.NewService(sp.LoadConfig(cfg), pg.DB, mailer, log), log)
	donationConfirmation := sdc.NewHandler(sdc.NewService(sdc.LoadConfig(cfg), mailer, log), log)
	orderConfirmation := soc.NewHandler(soc.NewService(soc.LoadConfig(cfg), pg.DB, mailer, log), log)
	addressLookup := al.NewHandler(al.NewService(resolver, log), log)

	// --- Router ---
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(web.CORS(cfg.HTTP.AllowedOrigins))
	router.Use(web.RequestLogger(log))
	router.Use(func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		handler := ctx.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		obs.RecordRequest(ctx.Request.Context(), handler, fmt.Sprintf("%d", ctx.Writer.Status()))
		obs.RecordRequestDuration(ctx.Request.Context(), time.Since(start), handler)
	})

	router.POST(cd.Route, web.Wrap(log, createDonation.Handle))
	router.POST(cp.Route, web.Wrap(log, createPayment.Handle))
	router.POST(vp.Route, web.Wrap(log, verifyPayment.Handle))
	router.POST(ba.Route, web.Wrap(log, bookAppointment.Handle))
	router.POST(san.Route, web.Wrap(log, appointmentNotification.Handle))
	router.POST(scn.Route, web.Wrap(log, contactNotification.Handle))
	router.POST(sne.Route, web.Wrap(log, notificationEmail.Handle))
	router.POST(sub.Route, web.Wrap(log, subscribeHandler.Handle))
	router.POST(snl.Route, web.Wrap(log, sendNewsletter.Handle))
	router.POST(sp.Route, web.Wrap(log, submitPhotos.Handle))
	router.POST(sdc.Route, web.Wrap(log, donationConfirmation.Handle))
	router.POST(soc.Route, web.Wrap(log, orderConfirmation.Handle))
	router.GET(al.AutocompleteRoute, web.Wrap(log, addressLookup.HandleAutocomplete))
	router.GET(al.DetailsRoute, web.Wrap(log, addressLookup.HandleDetails))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	router.GET("/ready", func(ctx *gin.Context) {
		if err := pg.Ping(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status": "ready",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining connections...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTP.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error during server shutdown", zap.Error(err))
	}

	zapLog.Info("Server stopped gracefully")
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alimikegami/bdseller-service/config"
	"github.com/alimikegami/bdseller-service/internal/controller"
	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/infrastructure/email"
	"github.com/alimikegami/bdseller-service/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/alimikegami/bdseller-service/internal/infrastructure/payment-gateway"
	appmiddleware "github.com/alimikegami/bdseller-service/internal/middleware"
	"github.com/alimikegami/bdseller-service/internal/repository"
	"github.com/alimikegami/bdseller-service/internal/service"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/alimikegami/bdseller-service/pkg/validator"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type eventProducer interface {
	service.EventPublisher
	Close() error
}

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo

	metrics  *echo.Echo
	producer eventProducer
	bookings service.BookingService
}

// Setup builds the HTTP server and wires every route. It must be called once
// per process because the Prometheus collectors register globally.
func (app *App) Setup() {
	e := echo.New()
	e.HideBanner = true
	e.Debug = !app.Config.IsProduction()
	e.Validator = validator.NewCustomValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(echo.WrapMiddleware(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, app.Config.TracingConfig.ServiceName,
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return fmt.Sprintf("[%s] %s", r.Method, r.URL.Path)
			}),
		)
	}))
	// Used empty string so that metrics are not prefixed with the service name
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(appmiddleware.Logger)

	app.producer = createProducer(app.Config)
	notifier := email.CreateNotifier(app.Config.SMTPConfig)
	gateway := paymentgateway.CreateMidtransGateway(paymentgateway.CreateMidtransClient(app.Config))

	userSvc := service.CreateUserService(repository.CreateNewMongoDBUserRepository(app.DB), *app.Config)
	productSvc := service.CreateProductService(repository.CreateNewMongoDBProductRepository(app.DB), app.producer)
	categorySvc := service.CreateCategoryService(repository.CreateNewMongoDBCategoryRepository(app.DB))
	wishListSvc := service.CreateWishListService(repository.CreateNewMongoDBWishListRepository(app.DB))
	app.bookings = service.CreateBookingService(repository.CreateNewMongoDBBookingRepository(app.DB), app.producer, notifier)
	paymentSvc := service.CreatePaymentService(repository.CreateNewMongoDBPaymentRepository(app.DB), gateway, app.producer)
	blogSvc := service.CreateBlogService(repository.CreateNewMongoDBBlogRepository(app.DB))

	isLoggedIn := appmiddleware.IsLoggedIn(app.Config.JWTSecret)
	isAdmin := appmiddleware.RequireRole(userSvc, domain.RoleAdmin)
	isSeller := appmiddleware.RequireRole(userSvc, domain.RoleSeller, domain.RoleAdmin)
	withRole := appmiddleware.ResolveRole(userSvc)

	g := e.Group("")
	controller.CreateUserController(g, userSvc, isLoggedIn, isAdmin)
	controller.CreateProductController(g, productSvc, isLoggedIn, isSeller)
	controller.CreateCategoryController(g, categorySvc, isLoggedIn, isAdmin)
	controller.CreateWishListController(g, wishListSvc, isLoggedIn)
	controller.CreateBookingController(g, app.bookings, isLoggedIn, withRole)
	controller.CreatePaymentController(g, paymentSvc, isLoggedIn)
	controller.CreateBlogController(g, blogSvc)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "BDSeller server is running")
	})
	e.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, map[string]string{"message": "pong"})
	})

	app.metrics = echo.New()
	app.metrics.HideBanner = true
	app.metrics.GET("/metrics", echoprometheus.NewHandler())

	app.Server = e
}

// Start blocks until the server is shut down.
func (app *App) Start() error {
	go func() {
		if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	log.Info().Str("port", app.Config.ServicePort).Msg("BDSeller server is running")
	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer(ctx context.Context) error {
	var errs []error
	if err := app.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down server: %w", err))
	}
	if err := app.metrics.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down metrics server: %w", err))
	}
	if err := app.bookings.WaitForNotifications(ctx); err != nil {
		errs = append(errs, fmt.Errorf("waiting for booking confirmations: %w", err))
	}
	if err := app.producer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing kafka producer: %w", err))
	}

	return errors.Join(errs...)
}

func createProducer(config *config.Config) eventProducer {
	if config.KafkaConfig.BrokerAddress == "" {
		log.Warn().Msg("BROKER_ADDRESS not set, domain events will not be published")
		return kafka.NoopProducer{}
	}

	return kafka.CreateKafkaProducer(config)
}

package routes

import (
	"context"
	"fmt"

	_ "espaco_eventos/docs" // swagger docs, generated by swag
	"espaco_eventos/internal/adapter/export"
	"espaco_eventos/internal/adapter/http/handlers"
	"espaco_eventos/internal/adapter/http/middleware"
	repository "espaco_eventos/internal/adapter/persistence/repository"
	"espaco_eventos/internal/config"
	"espaco_eventos/internal/domain/catalog"
	"espaco_eventos/internal/infrastructure/database"
	"espaco_eventos/internal/infrastructure/payments"
	"espaco_eventos/internal/logger"
	"espaco_eventos/internal/usecase"
	"espaco_eventos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the whole service and starts the HTTP server. The catalog is
// loaded once here; a load failure is fatal because no route can operate on
// a partial catalog.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Environment)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RoleResolver(cfg.Auth.JWTSecret))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := registerRoutes(router, cfg, log); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("storage_driver", cfg.Storage.Driver).Msg("starting http server")
	return router.Run(addr)
}

func registerRoutes(router *gin.Engine, cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()

	ddb, err := database.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("dynamodb client: %w", err)
	}

	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	data, err := catalogRepo.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	store := catalog.New(data.Services, data.PriceTables, data.ServicePrices)
	log.Info().
		Int("services", len(data.Services)).
		Int("price_tables", len(data.PriceTables)).
		Msg("catalog loaded")

	var quoteRepo interfaces.IQuoteRepository
	switch cfg.Storage.Driver {
	case "localslot":
		quoteRepo = repository.NewQuoteLocalSlotRepository()
	default:
		quoteRepo = repository.NewQuoteDynamoRepository(ddb)
	}
	paymentRepo := repository.NewQuotePaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.MockMode, log)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	editorUseCase := usecase.NewQuoteEditorUseCase(store, quoteRepo, log)
	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, store, paymentGateway, log)

	catalogHandler := handlers.NewCatalogHandler(store)
	sessionHandler := handlers.NewQuoteSessionHandler(editorUseCase, export.NewProposalGenerator())
	paymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase, log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, catalogHandler, sessionHandler, paymentHandler)
	return nil
}

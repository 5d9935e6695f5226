package main

import (
	"context"
	"log/slog"
	"os"

	"musika/config"
	"musika/internal/delivery"
	"musika/internal/delivery/http"
	"musika/internal/delivery/http/middleware"
	"musika/internal/delivery/http/router/handler"
	"musika/internal/infra/assistant"
	"musika/internal/infra/auth"
	"musika/internal/infra/ecocash"
	logs "musika/internal/infra/log"
	"musika/internal/infra/persistence/postgres"
	"musika/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewShippingRepository,
			postgres.NewFinancialRepository,
			postgres.NewProductRepository,
			postgres.NewBlogRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewMultimediaRepository,
			postgres.NewReportRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			ecocash.NewClient,
			assistant.NewGeminiAssistant,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewSearchService,
			impl.NewAnalyticsService,
			impl.NewReportService,
			impl.NewMultimediaService,
			impl.NewAssistantService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewSearchHandler,
			handler.NewAnalyticsHandler,
			handler.NewAssistantHandler,
			handler.NewReportHandler,
			handler.NewMultimediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"creatorhub/config"
	"creatorhub/internal/delivery"
	"creatorhub/internal/delivery/api"
	"creatorhub/internal/delivery/api/middleware"
	"creatorhub/internal/delivery/api/router/handler"
	"creatorhub/internal/infra/auth"
	logs "creatorhub/internal/infra/log"
	"creatorhub/internal/infra/metrics"
	"creatorhub/internal/infra/payment"
	"creatorhub/internal/infra/persistence/postgres"
	"creatorhub/internal/infra/pubsub"
	"creatorhub/internal/infra/qrcode"
	"creatorhub/internal/infra/storage"
	"creatorhub/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// A missing .env is fine; real deployments inject the environment directly.
	_ = godotenv.Load()

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
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSocialLinkRepository,
			postgres.NewProductRepository,
			postgres.NewCouponRepository,
			postgres.NewPartnerRepository,
			postgres.NewItemRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenVerifier,
			payment.NewPaymentGateway,
			storage.NewImageStorage,
			qrcode.NewFromConfig,
			pubsub.NewEventPublisher,
			metrics.NewMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlanService,
			impl.NewProductService,
			impl.NewCouponService,
			impl.NewPartnerService,
			impl.NewReorderService,
			impl.NewAnalyticsService,
			impl.NewOnboardingService,
			impl.NewProfileService,
			impl.NewPublicProfileService,
			impl.NewBillingService,
			impl.NewUploadService,
			impl.NewAdminService,
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
			handler.NewOnboardingHandler,
			handler.NewItemHandler,
			handler.NewProfileHandler,
			handler.NewAnalyticsHandler,
			handler.NewBillingHandler,
			handler.NewUploadHandler,
			handler.NewPublicHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

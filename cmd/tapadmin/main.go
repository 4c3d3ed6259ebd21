package main

import (
	"context"
	"log/slog"
	"os"

	"tapadmin/config"
	"tapadmin/internal/delivery"
	"tapadmin/internal/delivery/http"
	httpmiddleware "tapadmin/internal/delivery/http/middleware"
	"tapadmin/internal/delivery/http/router/handler"
	"tapadmin/internal/delivery/scheduler"
	"tapadmin/internal/infra/agent"
	"tapadmin/internal/infra/auth"
	"tapadmin/internal/infra/cache"
	logs "tapadmin/internal/infra/log"
	"tapadmin/internal/infra/metrics"
	"tapadmin/internal/infra/persistence/store"
	"tapadmin/internal/infra/pubsub"
	"tapadmin/internal/infra/qrcode"
	"tapadmin/internal/infra/storage"
	"tapadmin/internal/usecase"
	"tapadmin/internal/usecase/impl"

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
			seedBootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.NewClient,
		newMetrics,
	)
}

func newMetrics(cfg *config.Config) *metrics.Metrics {
	return metrics.Registry(cfg.Env.ServiceName)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewMerchantRepository,
			store.NewCustomerRepository,
			store.NewRewardRepository,
			store.NewAtomicRewardWriter,
			store.NewMembershipRepository,
			store.NewJobRepository,
			store.NewAdminRepository,
			store.NewEnquiryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewAggregateCache,
			pubsub.NewEventPublisher,
			storage.NewBlobStorage,
			qrcode.NewQRCodeService,
			agent.NewRewardAgent,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMerchantService,
			impl.NewCustomerService,
			impl.NewRewardService,
			impl.NewProgramService,
			impl.NewMembershipService,
			impl.NewJobService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdminHandler,
			handler.NewMerchantHandler,
			handler.NewCustomerHandler,
			handler.NewRewardHandler,
			handler.NewProgramHandler,
			handler.NewMembershipHandler,
			handler.NewJobHandler,
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
			fx.Annotate(
				scheduler.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedBootstrapAdmin makes sure the configured administrator exists before
// any server starts accepting logins.
func seedBootstrapAdmin(ctx context.Context, admins usecase.AdminUsecase) error {
	return admins.EnsureBootstrapAdmin(ctx)
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

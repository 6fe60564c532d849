package main

import (
	"context"
	"log/slog"
	"os"

	"places/config"
	"places/internal/delivery"
	"places/internal/delivery/api"
	apimiddleware "places/internal/delivery/api/middleware"
	"places/internal/delivery/api/router/handler"
	"places/internal/infra/auth"
	logs "places/internal/infra/log"
	"places/internal/infra/persistence/postgres"
	"places/internal/infra/pubsub"
	"places/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewPlaceRepository,
		postgres.NewGroupMemberRepository,
		postgres.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewJWTService,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewPlaceService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		apimiddleware.NewAuthMiddleware,
		func() handler.IdentityFunc {
			return apimiddleware.GetUserID
		},
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewPlaceHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}

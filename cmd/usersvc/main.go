package main

import (
	"context"
	"log/slog"
	"os"

	"usersvc/config"
	"usersvc/internal/delivery"
	"usersvc/internal/delivery/http"
	"usersvc/internal/delivery/http/middleware"
	"usersvc/internal/delivery/http/router/handler"
	"usersvc/internal/domain/service"
	"usersvc/internal/infra/auth"
	logs "usersvc/internal/infra/log"
	"usersvc/internal/infra/persistence/postgres"
	"usersvc/internal/infra/pubsub"
	"usersvc/internal/infra/validation"
	"usersvc/internal/usecase/impl"

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
			runBootstrap,
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
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCredentialsRepository,
			postgres.NewDepartmentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptCryptoService,
			auth.NewJWTService,
			auth.NewSecretGenerator,
			fx.Annotate(
				validation.New,
				fx.As(fx.Self()),
				fx.As(new(service.CommandValidator)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLoginHandler,
			impl.NewUpdateCredentialsHandler,
			impl.NewRecoverPasswordHandler,
			impl.NewCreateUserHandler,
			impl.NewUserService,
			impl.NewDepartmentService,
			impl.NewBootstrapper,
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
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewDepartmentHandler,
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

// runBootstrap seeds the first administrator once the database is reachable.
func runBootstrap(lc fx.Lifecycle, bootstrapper *impl.Bootstrapper) {
	lc.Append(fx.Hook{
		OnStart: bootstrapper.Run,
	})
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

package main

import (
	"context"
	"log/slog"
	"os"

	"usersvc/config"
	"usersvc/internal/delivery"
	"usersvc/internal/delivery/worker"
	"usersvc/internal/delivery/worker/handler"
	logs "usersvc/internal/infra/log"
	"usersvc/internal/infra/mail"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			mail.NewSMTPMailer,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

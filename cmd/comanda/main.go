package main

import (
	"context"
	"log/slog"
	"os"

	"comanda/config"
	"comanda/internal/delivery"
	"comanda/internal/delivery/http"
	"comanda/internal/delivery/http/router/handler"
	"comanda/internal/delivery/worker"
	workerhandler "comanda/internal/delivery/worker/handler"
	"comanda/internal/infra/api"
	"comanda/internal/infra/auth"
	"comanda/internal/infra/localstore"
	logs "comanda/internal/infra/log"
	"comanda/internal/infra/pubsub"
	"comanda/internal/usecase"
	"comanda/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config       *config.Config
	Deliveries   []delivery.Delivery `group:"deliveries"`
	PushDelivery delivery.Delivery   `name:"push"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startEngine,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		api.NewClient,
		localstore.New,
		auth.NewTokenInspector,
		pubsub.NewPushChannel,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewCheckoutService,
			impl.NewOrderFeeds,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			workerhandler.NewPushHandler,
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
		// The push endpoint server is provided by name so it is only served
		// when the endpoint provider is configured.
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`name:"push"`),
			),
		),
	)
}

type startEngineParams struct {
	fx.In
	fx.Lifecycle

	Catalog usecase.CatalogUsecase
	Feeds   map[string]usecase.OrderFeedUsecase
}

// startEngine starts the session-watching components once all wiring is in
// place and tears them down on shutdown.
func startEngine(params startEngineParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Catalog.Start(ctx); err != nil {
				return err
			}
			for _, feed := range params.Feeds {
				if err := feed.Start(ctx); err != nil {
					return err
				}
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, feed := range params.Feeds {
				feed.Stop()
			}
			params.Catalog.Stop()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	deliveries := params.Deliveries
	if params.Config.Push != nil && params.Config.Push.Provider == pubsub.ProviderEndpoint {
		deliveries = append(deliveries, params.PushDelivery)
	}

	for _, delivery := range deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

package pubsub

import (
	"context"
	"log/slog"
	"time"

	"comanda/config"
	"comanda/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

// Push channel provider names accepted in configuration.
const (
	ProviderGoogle   = "google"
	ProviderGocloud  = "gocloud"
	ProviderEndpoint = "endpoint"
)

// source is a background loop feeding the hub from an external subscription.
type source interface {
	Run(ctx context.Context) error
	Close() error
}

// ChannelParams holds dependencies for the push channel, injected by Fx
type ChannelParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// ChannelResult exposes both the PushChannel interface and the concrete hub;
// the worker's push endpoint publishes into the hub directly.
type ChannelResult struct {
	fx.Out

	Channel service.PushChannel
	Hub     *Hub
}

// NewPushChannel creates the hub and, depending on configuration, starts the
// subscriber source feeding it.
func NewPushChannel(params ChannelParams) (ChannelResult, error) {
	cfg := params.Config.Push
	logger := params.Logger
	hub := NewHub(logger)
	result := ChannelResult{Channel: hub, Hub: hub}

	// Without a configured provider the hub is fed only by the worker's push
	// endpoint, if that delivery is enabled.
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderEndpoint {
		logger.Info("Push channel fed by push endpoint only")
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return hub.Close()
			},
		})

		return result, nil
	}

	var src source
	var err error

	switch cfg.Provider {
	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return result, errors.New("project ID is required for google provider")
		}
		if cfg.SubscriptionID == "" {
			return result, errors.New("subscription ID is required for google provider")
		}
		src, err = NewGoogleSubscriber(params.Ctx, cfg.ProjectID, cfg.SubscriptionID, hub, logger)

	case ProviderGocloud:
		if cfg.SubscriptionURL == "" {
			return result, errors.New("subscription URL is required for gocloud provider")
		}
		src, err = NewGocloudSubscriber(params.Ctx, cfg.SubscriptionURL, hub, logger)

	default:
		return result, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
	if err != nil {
		return result, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := src.Run(params.Ctx); err != nil {
					logger.Error("Push channel source stopped", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing push channel")
			if err := src.Close(); err != nil {
				return err
			}

			return hub.Close()
		},
	})

	return result, nil
}

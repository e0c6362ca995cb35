package pubsub

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops order events when no broker is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).DebugContext(ctx, "Order event dropped, publishing disabled",
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// orderEventPublisher stamps the request id and occurrence time on events before
// handing them to the broker, and records what was sent.
type orderEventPublisher struct {
	next   service.EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

func (p *orderEventPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}

	if err := p.next.PublishOrderEvent(ctx, event); err != nil {
		return errors.Wrapf(err, "publish %s for order %s", event.Type, event.OrderID)
	}

	attrs := make([]any, 0, 4)
	for key, value := range orderAttributes(event) {
		attrs = append(attrs, slog.String(key, value))
	}
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).DebugContext(ctx, "Order event published", attrs...)

	return nil
}

func (p *orderEventPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the order event broker named by pubsub.provider.
// An empty or "none" provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider, err := resolveProvider(cfg)
	if err != nil {
		return nil, err
	}

	var broker service.EventPublisher
	switch provider {
	case constants.PubSubProviderNone:
		logger.Info("Order events disabled, using no-op publisher")

		return &noopPublisher{logger: logger}, nil

	case constants.PubSubProviderLocal:
		logger.Info("Publishing order events to local push endpoint",
			slog.String("endpoint", cfg.LocalEndpoint),
		)
		broker = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		logger.Info("Publishing order events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)
		broker, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	publisher := &orderEventPublisher{next: broker, logger: logger, now: time.Now}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing order event publisher", slog.String("provider", provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

// resolveProvider normalises the provider name and checks the settings it needs.
func resolveProvider(cfg *config.PubSubConfig) (string, error) {
	if cfg == nil {
		return constants.PubSubProviderNone, nil
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch provider {
	case "", constants.PubSubProviderNone:
		return constants.PubSubProviderNone, nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return "", errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return "", errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return "", errors.New("topic ID is required for google provider")
		}
	default:
		return "", errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return provider, nil
}

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"dronefleet-service/internal/config"
	"dronefleet-service/internal/logx"
	"dronefleet-service/internal/metrics"
	"dronefleet-service/internal/service"
	"dronefleet-service/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container for the status event worker
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	b := NewContainerBuilder()
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		provideStatusEventsTotal,
		service.NewStatusProcessor,
		makeStatusHandler,
		newStatusConsumer,
	)
}

func provideStatusEventsTotal() (*prometheus.CounterVec, error) {
	events := metrics.NewStatusEventsTotal()
	if err := prometheus.Register(events); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register delivery_status_events_total: %w", err)
		}
		events = are.ExistingCollector.(*prometheus.CounterVec)
	}
	return events, nil
}

func makeStatusHandler(p *service.StatusProcessor) kafka.HandleFunc {
	return p.Handle
}

func newStatusConsumer(
	cfg *config.Config,
	logger logx.Logger,
	events *prometheus.CounterVec,
	h kafka.HandleFunc,
) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, events, h)
}

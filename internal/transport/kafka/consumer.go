package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"

	"dronefleet-service/internal/logx"
	"dronefleet-service/internal/service"
)

// HandleFunc processes a single status event from Kafka
type HandleFunc func(context.Context, service.StatusEvent) error

// stubbed in tests
var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
	events  *prometheus.CounterVec
}

// NewConsumer creates a new Kafka consumer. Returns (nil, nil) when the
// broker configuration is absent; the worker then runs without Kafka.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, events *prometheus.CounterVec, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger,
		events:  events,
	}, nil
}

// Run starts the consumer
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			time.Sleep(time.Second)
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

func (c *Consumer) countEvent(outcome string) {
	if c.events != nil {
		c.events.WithLabelValues(outcome).Inc()
	}
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var dto StatusEventDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			h.c.logger.Warn("kafka bad json", logx.Err(err))
			h.c.countEvent("skipped")
			sess.MarkMessage(msg, "")
			continue
		}
		ev, err := ToDomain(dto)
		if err != nil {
			h.c.logger.Warn("kafka bad delivery id",
				logx.String("delivery_id", dto.DeliveryID),
			)
			h.c.countEvent("skipped")
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handler(sess.Context(), ev); err != nil {
			// returning the error leaves the offset unmarked so the
			// message is redelivered
			h.c.logger.Error("kafka handle failed, retry",
				logx.Int64("delivery_id", ev.DeliveryID),
				logx.String("status", ev.Status),
				logx.Err(err),
			)
			h.c.countEvent("failed")
			return err
		}

		h.c.countEvent("applied")
		sess.MarkMessage(msg, "")
	}
	return nil
}

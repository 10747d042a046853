package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

func newEvent(kind string, now time.Time, subject, counterparty common.Address, amount *uint256.Int, attrs map[string]string) *models.Event {
	evt := &models.Event{
		EventID:    uuid.NewString(),
		Kind:       kind,
		Timestamp:  now.Unix(),
		Subject:    subject.Hex(),
		Attributes: attrs,
	}
	if counterparty != (common.Address{}) {
		evt.Counterparty = counterparty.Hex()
	}
	if amount != nil {
		evt.Amount = amount.Dec()
	}
	return evt
}

// publishEvent publishes a committed ledger event to Kafka.
func (s *LedgerService) publishEvent(ctx context.Context, evt models.Event) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "kind", evt.Kind)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "kind", evt.Kind, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "kind", evt.Kind, "subject", evt.Subject, "amount", evt.Amount)
	}
}

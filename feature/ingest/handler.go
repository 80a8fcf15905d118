package ingest

import (
	"encoding/json"
	"fmt"

	"booking-api/core/contracts"
	"booking-api/feature/homes/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Inserter stores validated homes in order.
type Inserter interface {
	AddRange(inputs []models.HomeInput) ([]models.Home, error)
}

// Handler turns broker deliveries into home inserts.
type Handler struct {
	inserter Inserter
	logger   *zap.Logger
}

// NewHandler creates a new ingest handler.
func NewHandler(inserter Inserter, logger *zap.Logger) *Handler {
	return &Handler{inserter: inserter, logger: logger}
}

// Decode validates a message body and converts it into an insert payload.
func Decode(body []byte) (models.HomeInput, error) {
	if err := contracts.ValidateHome(body); err != nil {
		return models.HomeInput{}, err
	}

	var input models.HomeInput
	if err := json.Unmarshal(body, &input); err != nil {
		return models.HomeInput{}, fmt.Errorf("failed to decode home: %w", err)
	}
	if err := input.Validate(); err != nil {
		return models.HomeInput{}, err
	}
	return input, nil
}

// HandleBatch inserts the valid homes of the batch in delivery order.
func (h *Handler) HandleBatch(deliveries []amqp.Delivery) error {
	inputs := make([]models.HomeInput, 0, len(deliveries))
	for _, d := range deliveries {
		input, err := Decode(d.Body)
		if err != nil {
			h.logger.Warn("Skipping invalid home message",
				zap.Uint64("delivery_tag", d.DeliveryTag),
				zap.String("message_id", d.MessageId),
				zap.Error(err))
			continue
		}
		inputs = append(inputs, input)
	}

	if len(inputs) == 0 {
		return nil
	}

	stored, err := h.inserter.AddRange(inputs)
	if err != nil {
		return fmt.Errorf("failed to insert %d homes: %w", len(inputs), err)
	}

	h.logger.Info("Homes ingested",
		zap.Int("received", len(deliveries)),
		zap.Int("stored", len(stored)))
	return nil
}

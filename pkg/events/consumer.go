package events

import (
	"context"
	"encoding/json"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/voyago/voyago/pkg/database"
	"github.com/voyago/voyago/pkg/itinerary"
)

// BatchConsumer drains the events queue and archives each event into the
// events collection for later inspection.
type BatchConsumer struct {
	id int
}

func NewBatchConsumer(id int) *BatchConsumer {
	return &BatchConsumer{id: id}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	eventsCollection := database.GetCollection("events")

	for _, payload := range batch.Payloads() {
		var event itinerary.Event
		err := json.Unmarshal([]byte(payload), &event)
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode event payload")
			continue
		}

		log.Info().
			Str("type", string(event.Type)).
			Time("timestamp", event.Timestamp).
			Msg("Event received")

		_, err = eventsCollection.InsertOne(context.Background(), event)
		if err != nil {
			log.Error().Err(err).Msg("Failed to archive event")
		}
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to consume event")
		}
	}
}

// Package events publishes and consumes domain events over the Redis
// backed queue.
package events

import (
	"encoding/json"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/voyago/voyago/pkg/itinerary"
	"github.com/voyago/voyago/pkg/redis_client"
)

const queueName = "events-queue"

type Publisher struct {
	queue rmq.Queue
}

func NewPublisher() (*Publisher, error) {
	queue, err := redis_client.QueueConnection.OpenQueue(queueName)
	if err != nil {
		return nil, err
	}

	return &Publisher{queue: queue}, nil
}

func (p *Publisher) PublishDisruptionCreated(disruption *itinerary.Disruption) error {
	event := itinerary.Event{
		Type:      itinerary.EventTypeDisruptionCreated,
		Timestamp: time.Now(),
		Body:      disruption,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.queue.PublishBytes(eventBytes)
}

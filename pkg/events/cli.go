package events

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/voyago/voyago/pkg/consumer"
	"github.com/voyago/voyago/pkg/database"
	"github.com/voyago/voyago/pkg/itinerary"
	"github.com/voyago/voyago/pkg/redis_client"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Provides the events runner",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run events consumer",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					redisConsumer := consumer.RedisConsumer{
						QueueName:       queueName,
						NumberConsumers: 5,
						BatchSize:       20,
						Timeout:         2 * time.Second,
						Consumer:        NewBatchConsumer(0),
					}
					redisConsumer.Setup()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish

					return nil
				},
			},
			{
				Name:  "test-event",
				Usage: "generate a test event",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					disruption := itinerary.Disruption{
						PrimaryIdentifier: "VOYAGO:DISRUPTION:TEST",

						Type:             itinerary.DisruptionTypeLine,
						TargetIdentifier: "M1",

						JourneyRef:     "VOYAGO:JOURNEY:" + uuid.NewString(),
						UserIdentifier: "VOYAGO:USER:TEST",

						CreationDateTime: time.Now(),
					}

					eventsQueue, err := redis_client.QueueConnection.OpenQueue(queueName)
					if err != nil {
						log.Fatal().Err(err).Msg("Failed to start event queue")
					}

					event := itinerary.Event{
						Type:      itinerary.EventTypeDisruptionCreated,
						Timestamp: time.Now(),
						Body:      disruption,
					}

					eventBytes, _ := json.Marshal(event)

					eventsQueue.PublishBytes(eventBytes)

					return nil
				},
			},
		},
	}
}

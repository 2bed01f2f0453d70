package api

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/voyago/voyago/pkg/database"
	"github.com/voyago/voyago/pkg/events"
	"github.com/voyago/voyago/pkg/planner/assembler"
	"github.com/voyago/voyago/pkg/planner/comfort"
	"github.com/voyago/voyago/pkg/redis_client"
	"github.com/voyago/voyago/pkg/reroute"
	"github.com/voyago/voyago/pkg/stops"
	"github.com/voyago/voyago/pkg/tripplanner"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					rerouteService := reroute.NewService(
						reroute.NewMongoJourneyRepository(),
						reroute.NewMongoDisruptionRepository(),
						tripplanner.NewRemotePlanner(),
						stops.NewResolver(),
						comfort.NewFilter(),
						assembler.NewAssembler(),
					)

					eventPublisher, err := events.NewPublisher()
					if err != nil {
						log.Error().Err(err).Msg("Failed to open events queue, continuing without event publishing")
					} else {
						rerouteService.WithEventPublisher(eventPublisher)
					}

					return SetupServer(c.String("listen"), rerouteService)
				},
			},
		},
	}
}

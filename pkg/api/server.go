package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voyago/voyago/pkg/api/routes"
	"github.com/voyago/voyago/pkg/reroute"
)

func SetupServer(listen string, rerouteService *reroute.Service) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.JourneysRouter(group.Group("/journeys"), rerouteService)

	return webApp.Listen(listen)
}

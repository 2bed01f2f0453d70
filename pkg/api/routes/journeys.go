package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/voyago/voyago/pkg/reroute"
)

func JourneysRouter(router fiber.Router, rerouteService *reroute.Service) {
	router.Get("/:identifier", getJourney(rerouteService))
	router.Get("/:identifier/lines", getJourneyLines(rerouteService))
	router.Get("/:identifier/stops", getJourneyStops(rerouteService))

	router.Post("/:identifier/disruptions/station/:stop", reportStationDisruption(rerouteService))
	router.Post("/:identifier/disruptions/line/:line", reportLineDisruption(rerouteService))
}

func getJourney(rerouteService *reroute.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		journey, err := rerouteService.JourneyByIdentifier(c.Context(), c.Params("identifier"))
		if err != nil {
			return sendError(c, err)
		}

		journeyReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic", "detailed"},
		}, journey)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sheriff could not reduce Journey",
			})
		}

		return c.JSON(journeyReduced)
	}
}

func getJourneyLines(rerouteService *reroute.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lines, err := rerouteService.LinesForJourney(c.Context(), c.Params("identifier"))
		if err != nil {
			return sendError(c, err)
		}

		return c.JSON(lines)
	}
}

func getJourneyStops(rerouteService *reroute.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stops, err := rerouteService.StopsForJourney(c.Context(), c.Params("identifier"))
		if err != nil {
			return sendError(c, err)
		}

		return c.JSON(stops)
	}
}

func reportStationDisruption(rerouteService *reroute.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := rerouteService.ReportStationDisruption(c.Context(), c.Params("identifier"), c.Params("stop"), userIdentifier(c))
		if err != nil {
			return sendError(c, err)
		}

		return sendResult(c, result)
	}
}

func reportLineDisruption(rerouteService *reroute.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := rerouteService.ReportLineDisruption(c.Context(), c.Params("identifier"), c.Params("line"), userIdentifier(c))
		if err != nil {
			return sendError(c, err)
		}

		return sendResult(c, result)
	}
}

// Authentication lives in front of this service; the gateway forwards the
// caller identity in a header.
func userIdentifier(c *fiber.Ctx) string {
	return c.Get("X-User-Identifier", "anonymous")
}

func sendResult(c *fiber.Ctx, result *reroute.RerouteResult) error {
	resultReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, result)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce RerouteResult",
		})
	}

	return c.JSON(resultReduced)
}

func sendError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reroute.ErrJourneyNotFound):
		c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, reroute.ErrStopNotInJourney):
		c.SendStatus(fiber.StatusBadRequest)
	default:
		c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

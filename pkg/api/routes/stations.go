package routes

import (
	"strconv"
	"strings"

	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/departures"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

func StationsRouter(router fiber.Router, aggregator *departures.Aggregator) {
	router.Get("/", listStations(aggregator))
	router.Get("/:identifier", getStation(aggregator))
	router.Get("/:identifier/routes", getStationRoutes(aggregator))
	router.Get("/:identifier/arrivals", getStationArrivals(aggregator))
}

func listStations(aggregator *departures.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stationsReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic"},
		}, aggregator.ListStations())

		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sherrif could not reduce stations",
			})
		}

		return c.JSON(stationsReduced)
	}
}

func getStation(aggregator *departures.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := c.Params("identifier")

		summary, found := aggregator.Directory.Complex(identifier)
		if !found {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Could not find Station matching Station Identifier",
			})
		}

		summaryReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic"},
		}, summary)

		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sherrif could not reduce station",
			})
		}

		return c.JSON(summaryReduced)
	}
}

func getStationRoutes(aggregator *departures.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(aggregator.RoutesForStation(c.Params("identifier")))
	}
}

func getStationArrivals(aggregator *departures.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := c.Params("identifier")

		count, err := strconv.Atoi(c.Query("count", strconv.Itoa(aggregator.DefaultCount)))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter count should be an integer",
			})
		}

		// A routes parameter that is present but empty is an explicit
		// all-deselected filter, its absence means no filtering at all
		var routeFilter []string
		if c.Request().URI().QueryArgs().Has("routes") {
			routeFilter = []string{}

			for _, routeID := range strings.Split(c.Query("routes"), ",") {
				if routeID != "" {
					routeFilter = append(routeFilter, routeID)
				}
			}
		}

		board := aggregator.Arrivals(identifier, routeFilter, count)

		boardReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic"},
		}, board)

		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sherrif could not reduce departure board",
			})
		}

		return c.JSON(boardReduced)
	}
}

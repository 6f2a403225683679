package api

import (
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/api/routes"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/departures"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CreateServer assembles the fiber application serving the display API.
func CreateServer(aggregator *departures.Aggregator) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/stations"), aggregator)

	return webApp
}

func SetupServer(listen string, aggregator *departures.Aggregator) error {
	return CreateServer(aggregator).Listen(listen)
}

package main

import (
	"os"
	"time"

	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/api"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/stations"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/transforms"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("SUBWAYDISPLAYHUB_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("SUBWAYDISPLAYHUB_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	transforms.SetupClient()

	app := &cli.App{
		Name:        "subwaydisplayhub",
		Description: "Single binary of truth for SubwayDisplayHub - station directory, arrivals aggregation & the display web API",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the configuration file",
				Value: "config.yml",
			},
		},

		Commands: []*cli.Command{
			api.RegisterCLI(),
			stations.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

package api

import (
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/config"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/departures"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/stations"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/transiter"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
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
						Usage: "listen target for the web server, overrides the configured one",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					directory := stations.Load(cfg.Stations.File)
					client := transiter.NewClient(cfg.Upstream.Endpoint)
					aggregator := departures.NewAggregator(directory, client, cfg.Board)

					listen := c.String("listen")
					if listen == "" {
						listen = cfg.Server.Listen
					}

					log.Info().
						Str("listen", listen).
						Str("upstream", cfg.Upstream.Endpoint).
						Msg("Starting web API")

					return SetupServer(listen, aggregator)
				},
			},
		},
	}
}

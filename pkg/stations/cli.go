package stations

import (
	"errors"
	"fmt"

	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/config"
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "Inspect the station directory",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List every consolidated station complex",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					directory := Load(cfg.Stations.File)

					pretty.Println(directory.Consolidated())

					return nil
				},
			},
			{
				Name:      "lookup",
				Usage:     "Lookup a station complex by any of its identifiers",
				ArgsUsage: "<identifier>",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return errors.New("<identifier> must be provided")
					}

					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					directory := Load(cfg.Stations.File)

					identifier := c.Args().Get(0)

					summary, found := directory.Complex(identifier)
					if !found {
						return fmt.Errorf("No station matches %s", identifier)
					}

					pretty.Println(summary)

					return nil
				},
			},
		},
	}
}

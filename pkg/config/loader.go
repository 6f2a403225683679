package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/util"
)

const defaultListen = ":8080"
const defaultUpstreamEndpoint = "http://localhost:8000/systems/us-ny-subway"
const defaultStationsFile = "data/stations.csv"

const defaultArrivalsTTLMS = 20000
const defaultRoutesTTLMS = 300000
const defaultCount = 30
const defaultMaxCount = 100

// Load reads the application configuration from path, applies environment
// variable overrides and defaults, and validates the result.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	env := util.GetEnvironmentVariables()

	if env["SUBWAYDISPLAYHUB_LISTEN"] != "" {
		cfg.Server.Listen = env["SUBWAYDISPLAYHUB_LISTEN"]
	}
	if env["SUBWAYDISPLAYHUB_UPSTREAM_ENDPOINT"] != "" {
		cfg.Upstream.Endpoint = env["SUBWAYDISPLAYHUB_UPSTREAM_ENDPOINT"]
	}
	if env["SUBWAYDISPLAYHUB_STATIONS_FILE"] != "" {
		cfg.Stations.File = env["SUBWAYDISPLAYHUB_STATIONS_FILE"]
	}

	if cfg.Server.Listen == "" {
		cfg.Server.Listen = defaultListen
	}
	if cfg.Upstream.Endpoint == "" {
		cfg.Upstream.Endpoint = defaultUpstreamEndpoint
	}
	if cfg.Stations.File == "" {
		cfg.Stations.File = defaultStationsFile
	}
	if cfg.Board.ArrivalsTTLMS == 0 {
		cfg.Board.ArrivalsTTLMS = defaultArrivalsTTLMS
	}
	if cfg.Board.RoutesTTLMS == 0 {
		cfg.Board.RoutesTTLMS = defaultRoutesTTLMS
	}
	if cfg.Board.DefaultCount == 0 {
		cfg.Board.DefaultCount = defaultCount
	}
	if cfg.Board.MaxCount == 0 {
		cfg.Board.MaxCount = defaultMaxCount
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

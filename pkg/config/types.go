package config

import "time"

// ServerConfig contains the web API listen configuration
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// UpstreamConfig points at the remote arrivals API
type UpstreamConfig struct {
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`
}

// StationsConfig locates the static station list
type StationsConfig struct {
	File string `yaml:"file" validate:"required"`
}

// BoardConfig controls cache lifetimes and row counts for departure boards
type BoardConfig struct {
	ArrivalsTTLMS int `yaml:"arrivalsTTLMS" validate:"gte=0"`
	RoutesTTLMS   int `yaml:"routesTTLMS" validate:"gte=0"`
	DefaultCount  int `yaml:"defaultCount" validate:"gte=0"`
	MaxCount      int `yaml:"maxCount" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Stations StationsConfig `yaml:"stations"`
	Board    BoardConfig    `yaml:"board"`
}

func (b BoardConfig) ArrivalsTTL() time.Duration {
	return time.Duration(b.ArrivalsTTLMS) * time.Millisecond
}

func (b BoardConfig) RoutesTTL() time.Duration {
	return time.Duration(b.RoutesTTLMS) * time.Millisecond
}

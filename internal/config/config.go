package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for personal-site.
type Config struct {
	Data    DataConfig    `toml:"data"`
	Site    SiteConfig    `toml:"site"`
	Sources SourcesConfig `toml:"sources"`
	Preview PreviewConfig `toml:"preview"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type SiteConfig struct {
	OutDir  string `toml:"out_dir"`
	BaseURL string `toml:"base_url"`
	Title   string `toml:"title"`
}

type SourcesConfig struct {
	Running   string  `toml:"running"`
	Venues    string  `toml:"venues"`
	Featured  string  `toml:"featured"`
	Topology  string  `toml:"topology"`
	RateLimit float64 `toml:"rate_limit"`
}

type PreviewConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data: DataConfig{Dir: "data"},
		Site: SiteConfig{
			OutDir:  "public",
			BaseURL: "https://ebochsler.com",
			Title:   "Eric Bochsler",
		},
		Sources: SourcesConfig{
			Running:   "https://ebochsler.com/data/running-data.json",
			Venues:    "https://ebochsler.com/data/brewery-data.json",
			Featured:  "https://ebochsler.com/data/featured-routes.json",
			Topology:  "https://ebochsler.com/data/world-110m.geojson",
			RateLimit: 4.0,
		},
		Preview: PreviewConfig{Host: "localhost", Port: 8080},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Package main is the entry point for the outfit-fetch CLI, which dumps the
// raw GraphQL response for a single outfit.
package main

import (
	"context"
	"log"
	"os"

	"github.com/isobit/cli"

	"github.com/leennnS/Clueless/internal/config"
	"github.com/leennnS/Clueless/internal/graphql"
	"github.com/leennnS/Clueless/internal/outfits"
)

const configPathEnv = "CLUELESS_CONFIG_PATH"

type Fetch struct {
	Config   string  `cli:"short=C,help=path to YAML config file"`
	Endpoint *string `cli:"short=e,help=GraphQL endpoint URL"`
	OutfitID *int    `cli:"short=o,name=outfit-id,help=outfit id to fetch"`
}

func main() {
	err := cli.New("outfit-fetch", &Fetch{}).
		Parse().
		Run()

	if err != nil && err != cli.ErrHelp {
		log.Fatalf("error: %v", err)
	}
}

func (cmd Fetch) Run() error {
	cfg := loadConfig(cmd.Config)
	config.ApplyEnvOverrides(cfg)

	if cmd.Endpoint != nil {
		cfg.GraphQL.URL = *cmd.Endpoint
	}
	if cmd.OutfitID != nil {
		cfg.Fetcher.OutfitID = *cmd.OutfitID
	}

	client, err := graphql.NewHTTPClient(cfg.GraphQL)
	if err != nil {
		return err
	}

	fetcher := outfits.NewFetcher(client, os.Stdout)
	return fetcher.Run(context.Background(), cfg.Fetcher.OutfitID)
}

// loadConfig reads the config file named by the --config flag or the
// CLUELESS_CONFIG_PATH environment variable. When neither is set, or when the
// file cannot be read, defaults are used.
func loadConfig(path string) *config.Config {
	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("could not load config from %q (%v), using defaults", path, err)
		return config.DefaultConfig()
	}
	return cfg
}

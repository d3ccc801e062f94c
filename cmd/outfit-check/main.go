// Package main is the entry point for the outfit-check CLI, which prints the
// item count for each outfit in a range.
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

type Check struct {
	Config   string  `cli:"short=C,help=path to YAML config file"`
	Endpoint *string `cli:"short=e,help=GraphQL endpoint URL"`
	First    *int    `cli:"short=f,help=first outfit id to check"`
	Last     *int    `cli:"short=l,help=last outfit id to check (inclusive)"`
}

func main() {
	err := cli.New("outfit-check", &Check{}).
		Parse().
		Run()

	if err != nil && err != cli.ErrHelp {
		log.Fatalf("error: %v", err)
	}
}

func (cmd Check) Run() error {
	cfg := loadConfig(cmd.Config)
	config.ApplyEnvOverrides(cfg)

	if cmd.Endpoint != nil {
		cfg.GraphQL.URL = *cmd.Endpoint
	}
	if cmd.First != nil {
		cfg.Checker.FirstOutfitID = *cmd.First
	}
	if cmd.Last != nil {
		cfg.Checker.LastOutfitID = *cmd.Last
	}

	client, err := graphql.NewHTTPClient(cfg.GraphQL)
	if err != nil {
		return err
	}

	checker := outfits.NewChecker(client, os.Stdout)
	return checker.Run(context.Background(), cfg.Checker.FirstOutfitID, cfg.Checker.LastOutfitID)
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

package main

import (
	"fmt"
	"io"
	"os"

	"todolist/internal/api"
	"todolist/internal/cli"
	"todolist/internal/config"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyEnvironment(cfg, getEnvironment())

	root := cli.NewRootCommand(cfg, newAPI)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newAPI opens the store described by cfg and wires the services over it
func newAPI(cfg *config.Config) (api.API, io.Closer, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	return api.NewFromRepository(repo, cfg), repo, nil
}

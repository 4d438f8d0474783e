// Package main is the entry point for Skirmish.
package main

import (
	"context"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/skirmish/internal/game"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/player"
	"github.com/samdwyer/skirmish/internal/telemetry"
	"github.com/samdwyer/skirmish/internal/ui"
	"github.com/samdwyer/skirmish/internal/world"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	var cfg game.Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	terrains := gamedata.MustLoadTerrainRegistry()
	units := gamedata.MustLoadUnitRegistry()
	actions := gamedata.MustLoadActionRegistry()
	scenarios := gamedata.MustLoadScenarioRegistry()

	scenario := scenarios.GetByID(cfg.Scenario)
	if scenario == nil {
		log.Fatalf("Unknown scenario %q", cfg.Scenario)
	}

	var players []player.Player
	if cfg.Auto {
		players = []player.Player{
			player.NewRandom("Red", cfg.Seed),
			player.NewRandom("Blue", cfg.Seed+1),
		}
	} else {
		screen, err := ui.NewScreen()
		if err != nil {
			log.Fatalf("Failed to initialize screen: %v", err)
		}
		defer screen.Close()
		renderer := ui.NewRenderer(screen, terrains)
		players = []player.Player{
			ui.NewInteractive("Player", screen, renderer),
			player.NewRandom("Rival", cfg.Seed),
		}
	}

	maps, err := world.BuildScenario(scenario, terrains, units, actions, players)
	if err != nil {
		log.Fatalf("Failed to build scenario: %v", err)
	}

	g := game.New(game.Standard{Title: scenario.Name}, maps, players)
	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

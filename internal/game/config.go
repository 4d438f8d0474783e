package game

// Config holds runtime options parsed from the environment.
type Config struct {
	// Seed for automated players' random number generation. A seed of 0
	// means a time-based seed will be used.
	Seed int64 `env:"SKIRMISH_SEED"`
	// Scenario names the scenario definition to play.
	Scenario string `env:"SKIRMISH_SCENARIO" envDefault:"skirmish"`
	// Auto runs the game with automated players only, no terminal UI.
	Auto bool `env:"SKIRMISH_AUTO"`
}

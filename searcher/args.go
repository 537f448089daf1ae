package searcher

import (
	"fmt"
	"os"
	"pacagent/game"
	"time"

	"gopkg.in/yaml.v3"
)

// Hyperparameters for every strategy

const (
	DefaultDepth = 5
	MaxDepth     = 10 // Trees hold (4^(d+1)-1)/3 nodes
)

type Config struct {
	Strategy string        `yaml:"strategy"`
	Depth    int           `yaml:"depth"`
	Duration time.Duration `yaml:"duration"` // Per move budget, 0 for none
	Seed     uint64        `yaml:"seed"`

	// Simulated annealing
	Temperature int64   `yaml:"temperature"`
	Cooling     float64 `yaml:"cooling"`

	// Genetic algorithm
	Population      int     `yaml:"population"`
	Generations     int     `yaml:"generations"` // 0 uses depth
	Growth          float64 `yaml:"growth"`
	Elite           float64 `yaml:"elite"`
	CrossoverPoints int     `yaml:"crossover_points"`

	// K-nearest
	Points int     `yaml:"points"` // Per action
	Extent float64 `yaml:"extent"` // Points fall in [-Extent, Extent]^2

	Weights game.Weights `yaml:"weights"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:        DepthFirst,
		Depth:           DefaultDepth,
		Temperature:     4_000_000,
		Cooling:         0.97,
		Population:      5,
		Growth:          0.4,
		Elite:           0.3,
		CrossoverPoints: 2,
		Points:          10,
		Extent:          10,
		Weights:         game.DefaultWeights(),
	}
}

func (c Config) Validate() error {
	if _, ok := strategies[c.Strategy]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Strategy)
	}
	if c.Depth < 1 || c.Depth > MaxDepth {
		return fmt.Errorf("depth %d out of range [1, %d]", c.Depth, MaxDepth)
	}
	if c.Duration < 0 {
		return fmt.Errorf("negative duration %v", c.Duration)
	}
	if c.Temperature < 0 || c.Cooling < 0 || c.Cooling >= 1 {
		return fmt.Errorf("annealing needs temperature >= 0 and cooling in [0, 1), got %d and %v", c.Temperature, c.Cooling)
	}
	if c.Population < 1 || c.Generations < 0 || c.CrossoverPoints < 0 {
		return fmt.Errorf("invalid genetic parameters")
	}
	if c.Growth < 0 || c.Elite < 0 || c.Elite > 1 {
		return fmt.Errorf("growth must be >= 0 and elite in [0, 1], got %v and %v", c.Growth, c.Elite)
	}
	if c.Points < 0 || c.Extent <= 0 {
		return fmt.Errorf("k-nearest needs points >= 0 and extent > 0")
	}
	return nil
}

// LoadConfig reads a YAML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

package engine

import (
	"context"
	"fmt"
	"pacagent/experiments/metrics"
	"pacagent/game"
	"pacagent/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalGame struct {
	Arena    *game.Arena
	Agent    agent.Agent
	Ghosts   GhostPolicy
	Budget   time.Duration // Per tick, 0 for none
	MaxTicks int
	Seed     uint64 // Agents implementing agent.Seeder get Seed+tick before every search
}

func LocalEngine(arena *game.Arena, a agent.Agent, ghosts GhostPolicy, budget time.Duration, maxTicks int) *LocalGame {
	if arena == nil || a == nil || ghosts == nil {
		panic("local engine needs an arena, an agent and a ghost policy")
	}
	if maxTicks <= 0 {
		maxTicks = MaxTicks
	}
	return &LocalGame{
		Arena:    arena,
		Agent:    a,
		Ghosts:   ghosts,
		Budget:   budget,
		MaxTicks: maxTicks,
	}
}

// Run executes the game loop until the agent runs out of lives, clears the maze or hits
// the tick limit. Ghosts are predicted to repeat their last observed action.
func (e *LocalGame) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting game with %d ghosts and %d lives", e.Arena.Opponents(), e.Arena.Lives())

	for !e.Arena.GameOver() && e.Arena.Tick() < e.MaxTicks {
		if err := ctx.Err(); err != nil {
			return e.complete(gameMetric), moveMetrics, err
		}

		action, searchMetric, err := e.findMove(ctx)
		if err != nil {
			return e.complete(gameMetric), moveMetrics, fmt.Errorf("failed to find move at tick %d: %w", e.Arena.Tick(), err)
		}
		if action == game.Neutral {
			log.Debug().Int("tick", e.Arena.Tick()).Msg("agent has no preference, holding position")
		}

		// Neutral leaves the agent in place
		err = e.Arena.Advance(action, e.Ghosts.Actions(e.Arena))
		if err != nil {
			return e.complete(gameMetric), moveMetrics, fmt.Errorf("failed to advance tick %d: %w", e.Arena.Tick(), err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Tick:         e.Arena.Tick(),
			Score:        e.Arena.Score(),
			Lives:        e.Arena.Lives(),
			SearchMetric: searchMetric,
		})
	}

	gameMetric = e.complete(gameMetric)
	log.Info().Msgf("game over after %d ticks with score %d, %d lives left, cleared=%t",
		gameMetric.TotalTicks, gameMetric.Score, gameMetric.Lives, gameMetric.Cleared)
	return gameMetric, moveMetrics, nil
}

func (e *LocalGame) findMove(ctx context.Context) (game.Action, metrics.SearchMetric, error) {
	predicted := make([]game.Action, e.Arena.Opponents())
	for i := range predicted {
		predicted[i] = e.Arena.OpponentLastAction(i)
	}

	if seeder, ok := e.Agent.(agent.Seeder); ok {
		seeder.Seed(e.Seed + uint64(e.Arena.Tick()))
	}

	if e.Budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Budget)
		defer cancel()
	}
	return e.Agent.FindMove(ctx, e.Arena, predicted)
}

func (e *LocalGame) complete(gameMetric metrics.GameMetric) metrics.GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalTicks = e.Arena.Tick()
	gameMetric.Score = e.Arena.Score()
	gameMetric.Lives = e.Arena.Lives()
	gameMetric.Cleared = e.Arena.Cleared()
	return gameMetric
}

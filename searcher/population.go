package searcher

import (
	"cmp"
	"fmt"
	"pacagent/game"
	"slices"
)

// individual is a candidate plan. Neutral ends the plan early.
type individual struct {
	plan   []game.Action
	score  int64
	scored bool
}

// genetic evolves whole plans of depth actions by crossover of the fittest individuals
// and returns the first action of the best plan.
func genetic(s *search) (game.Action, error) {
	population := make([]*individual, 0, s.config.Population)
	for range s.config.Population {
		ind, err := s.randomPlan()
		if err != nil {
			return game.Neutral, err
		}
		population = append(population, ind)
	}

	generations := s.config.Generations
	if generations == 0 {
		generations = s.depth
	}
	for range generations {
		if s.checkpoint() {
			break
		}
		if err := s.rank(population); err != nil {
			return game.Neutral, err
		}

		size := len(population)
		children := int(s.config.Growth * float64(size))
		elite := min(int(s.config.Elite*float64(size))+1, size)
		for range children {
			first := population[s.rng.Intn(elite)]
			second := population[s.rng.Intn(elite)]
			population = append(population, s.crossover(first, second))
		}
	}
	if err := s.rank(population); err != nil {
		return game.Neutral, err
	}

	for _, ind := range population {
		if b := branchIndex(ind.plan[0]); b >= 0 && ind.score != MinScore {
			s.branches[b] = max(s.branches[b], ind.score)
		}
	}
	return population[0].plan[0], nil
}

// randomPlan builds a plan of legal actions by playing random moves on one copy of the root.
func (s *search) randomPlan() (*individual, error) {
	ind := &individual{plan: make([]game.Action, s.depth)}
	state := s.root.Copy()
	s.metrics.AddClone()
	for i := range ind.plan {
		var legal []game.Action
		for _, action := range game.Branches {
			if game.IsLegal(state, action) {
				legal = append(legal, action)
			}
		}
		if len(legal) == 0 {
			break
		}
		ind.plan[i] = legal[s.rng.Intn(len(legal))]
		if err := state.Advance(ind.plan[i], s.predicted); err != nil {
			return nil, fmt.Errorf("failed to advance %s: %w", ind.plan[i], err)
		}
	}
	ind.score = s.evaluate(state)
	ind.scored = true
	return ind, nil
}

// crossover copies first and overwrites random positions with second's actions.
func (s *search) crossover(first, second *individual) *individual {
	child := &individual{plan: slices.Clone(first.plan)}
	for range s.config.CrossoverPoints {
		i := s.rng.Intn(len(child.plan))
		child.plan[i] = second.plan[i]
	}
	return child
}

// fitness simulates the plan on one copy of the root. A plan with an illegal action scores MinScore.
func (s *search) fitness(ind *individual) error {
	if ind.scored {
		return nil
	}
	state := s.root.Copy()
	s.metrics.AddClone()
	ind.score, ind.scored = MinScore, true
	for _, action := range ind.plan {
		if action == game.Neutral {
			break
		}
		if !game.IsLegal(state, action) {
			return nil
		}
		if err := state.Advance(action, s.predicted); err != nil {
			return fmt.Errorf("failed to advance %s: %w", action, err)
		}
	}
	ind.score = s.evaluate(state)
	return nil
}

// rank sorts the population by descending fitness, keeping the order of equal individuals.
func (s *search) rank(population []*individual) error {
	for _, ind := range population {
		if err := s.fitness(ind); err != nil {
			return err
		}
	}
	slices.SortStableFunc(population, func(a, b *individual) int {
		return cmp.Compare(b.score, a.score)
	})
	return nil
}

type candidate struct {
	identity game.Action // First action of the branch
	state    game.State
	score    int64
	expanded bool
}

// evolution grows one step per generation from the fittest unexpanded candidate and returns
// the identity of the fittest candidate overall.
func evolution(s *search) (game.Action, error) {
	var population []*candidate
	spawn := func(parent game.State, action, identity game.Action) error {
		state, ok, err := s.advance(parent, action)
		if err != nil || !ok {
			return err
		}
		population = append(population, &candidate{identity: identity, state: state, score: s.evaluate(state)})
		return nil
	}

	for _, action := range game.Branches {
		if err := spawn(s.root, action, action); err != nil {
			return game.Neutral, err
		}
	}
	for range s.depth - 1 {
		if s.checkpoint() {
			break
		}
		parent := fittest(population, true)
		if parent == nil {
			break
		}
		parent.expanded = true
		for _, action := range game.Branches {
			if err := spawn(parent.state, action, parent.identity); err != nil {
				return game.Neutral, err
			}
		}
	}

	for _, c := range population {
		b := branchIndex(c.identity)
		s.branches[b] = max(s.branches[b], c.score)
	}
	if best := fittest(population, false); best != nil {
		return best.identity, nil
	}
	return game.Neutral, nil
}

// fittest returns the highest scoring candidate, earliest on ties.
func fittest(population []*candidate, unexpanded bool) *candidate {
	var best *candidate
	for _, c := range population {
		if unexpanded && c.expanded {
			continue
		}
		if best == nil || c.score > best.score {
			best = c
		}
	}
	return best
}

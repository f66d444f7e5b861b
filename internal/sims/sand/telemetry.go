package sand

import (
	"sort"
	"sync"
)

// RunResult captures telemetry from the deterministic scenarios run for one
// seed.
type RunResult struct {
	Seed int64

	// FireLifetime is the tick on which a lone Fire cell disappeared.
	FireLifetime int
	// FireOut is false when the fire outlived the tick budget.
	FireOut bool

	// SettleTick is the tick on which a dropped grain reached the floor.
	SettleTick int
	// Settled is false when the grain never came to rest or moved again.
	Settled bool

	// Conserved reports that Sand and Water counts never changed during a
	// mixed run with no brush input.
	Conserved bool
}

// SweepSummary aggregates RunResults across seeds.
type SweepSummary struct {
	Runs int

	FireMean  float64
	FireMax   int
	FireAlive int

	SettleMax int
	Unsettled int

	Violations int

	Results []RunResult
}

// FireLifetime places one Fire cell at the bottom centre of an otherwise
// empty grid and steps until it is gone. It returns the tick it vanished on
// and whether that happened within maxTicks.
func FireLifetime(cfg Config, seed int64, maxTicks int) (int, bool) {
	cfg.Scene = "empty"
	e, err := New(cfg)
	if err != nil {
		return 0, false
	}
	e.Reset(seed)
	e.grid.Set(cfg.Width/2, cfg.Height-1, Fire)
	for tick := 1; tick <= maxTicks; tick++ {
		e.Step()
		if e.grid.Count(Fire) == 0 {
			return tick, true
		}
	}
	return maxTicks, false
}

// SettleTime drops one Sand grain from the top centre onto a Stone floor. It
// returns the tick on which the grain reached the row above the floor and
// whether it then stayed there for the rest of maxTicks.
func SettleTime(cfg Config, seed int64, maxTicks int) (int, bool) {
	cfg.Scene = "floor"
	e, err := New(cfg)
	if err != nil {
		return 0, false
	}
	e.Reset(seed)
	x, rest := cfg.Width/2, cfg.Height-2
	e.grid.Set(x, 0, Sand)

	arrived := -1
	for tick := 1; tick <= maxTicks; tick++ {
		e.Step()
		at := e.grid.Get(x, rest) == Sand
		switch {
		case at && arrived < 0:
			arrived = tick
		case !at && arrived >= 0:
			return arrived, false
		}
	}
	if arrived < 0 {
		return maxTicks, false
	}
	return arrived, true
}

// Conserves scatters Sand and Water over dune terrain, then checks their
// counts stay constant for ticks steps.
func Conserves(cfg Config, seed int64, ticks int) bool {
	cfg.Scene = "dunes"
	e, err := New(cfg)
	if err != nil {
		return false
	}
	e.Reset(seed)
	w, h := cfg.Width, cfg.Height
	for i := 0; i < 8; i++ {
		m := Sand
		if i%2 == 1 {
			m = Water
		}
		x := e.rng.IntN(w)
		y := e.rng.IntN(h / 2)
		_ = e.PaintStroke(Stroke{X: x, Y: y, Radius: 3, Material: m, Probability: 0.7})
	}

	sand, water := e.grid.Count(Sand), e.grid.Count(Water)
	for tick := 0; tick < ticks; tick++ {
		e.Step()
		if e.grid.Count(Sand) != sand || e.grid.Count(Water) != water {
			return false
		}
	}
	return true
}

// RunScenarios evaluates every scenario for one seed.
func RunScenarios(cfg Config, seed int64, maxTicks int) RunResult {
	res := RunResult{Seed: seed}
	res.FireLifetime, res.FireOut = FireLifetime(cfg, seed, maxTicks)
	res.SettleTick, res.Settled = SettleTime(cfg, seed, maxTicks)
	res.Conserved = Conserves(cfg, seed, maxTicks)
	return res
}

// Sweep runs the scenarios for every seed on a pool of workers. Each worker
// builds its own engines; nothing is shared between goroutines.
func Sweep(cfg Config, seeds []int64, maxTicks, workers int) SweepSummary {
	if workers <= 0 {
		workers = 1
	}
	if maxTicks <= 0 {
		maxTicks = 200
	}

	jobs := make(chan int64)
	results := make(chan RunResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- RunScenarios(cfg, seed, maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	summary := SweepSummary{}
	fireTotal := 0
	for res := range results {
		summary.Results = append(summary.Results, res)
		summary.Runs++
		if res.FireOut {
			fireTotal += res.FireLifetime
			if res.FireLifetime > summary.FireMax {
				summary.FireMax = res.FireLifetime
			}
		} else {
			summary.FireAlive++
		}
		if res.Settled {
			if res.SettleTick > summary.SettleMax {
				summary.SettleMax = res.SettleTick
			}
		} else {
			summary.Unsettled++
		}
		if !res.Conserved {
			summary.Violations++
		}
	}
	if out := summary.Runs - summary.FireAlive; out > 0 {
		summary.FireMean = float64(fireTotal) / float64(out)
	}
	sort.Slice(summary.Results, func(i, j int) bool { return summary.Results[i].Seed < summary.Results[j].Seed })
	return summary
}

package sand

import (
	"fmt"

	"falling-sand/internal/core"
)

// Behavior selects the movement pattern a Rule applies each tick.
type Behavior uint8

const (
	// Immobile cells are never evaluated.
	Immobile Behavior = iota
	// Granular cells try straight, then diagonal-left, then diagonal-right
	// along their direction.
	Granular
	// Fluid cells try straight along their direction, then one randomly
	// chosen side.
	Fluid
	// Rising cells only move straight along their direction (upward by
	// default).
	Rising
)

func (b Behavior) String() string {
	switch b {
	case Immobile:
		return "immobile"
	case Granular:
		return "granular"
	case Fluid:
		return "fluid"
	case Rising:
		return "rising"
	default:
		return fmt.Sprintf("behavior(%d)", uint8(b))
	}
}

// Rule is the per-tick transition of one material.
type Rule struct {
	Behavior Behavior
	// Direction is +1 for gravity, -1 for buoyancy. Zero picks the
	// behaviour's default.
	Direction int
	// Decay is the chance per evaluation that the cell turns Empty instead
	// of moving.
	Decay float64
	// Displaces lists the materials this one may swap places with.
	Displaces MaterialSet
}

func (r Rule) direction() int {
	switch {
	case r.Direction > 0:
		return 1
	case r.Direction < 0:
		return -1
	case r.Behavior == Rising:
		return -1
	default:
		return 1
	}
}

// RuleTable maps every known material to its Rule. Empty and Stone are
// always present and always Immobile.
type RuleTable struct {
	rules [MaxMaterials]Rule
	known MaterialSet
}

// NewRuleTable returns a table that knows only Empty and Stone.
func NewRuleTable() *RuleTable {
	return &RuleTable{known: SetOf(Empty, Stone)}
}

// DefaultRules returns the built-in sand, water and fire behaviours.
func DefaultRules(p Params) *RuleTable {
	rt := NewRuleTable()
	rt.mustDefine(Sand, Rule{Behavior: Granular, Displaces: SetOf(Empty, Water)})
	rt.mustDefine(Water, Rule{Behavior: Fluid, Displaces: SetOf(Empty)})
	rt.mustDefine(Fire, Rule{Behavior: Rising, Decay: p.FireDecay, Displaces: SetOf(Empty)})
	return rt
}

// Define registers or replaces the rule for m.
func (rt *RuleTable) Define(m Material, r Rule) error {
	if m >= MaxMaterials {
		return fmt.Errorf("%w: tag %d exceeds table size", ErrUnknownMaterial, uint8(m))
	}
	if (m == Empty || m == Stone) && (r.Behavior != Immobile || r.Decay != 0) {
		return fmt.Errorf("%w: %s must stay immobile", ErrInvalidRule, m)
	}
	rt.rules[m] = r
	rt.known |= SetOf(m)
	return nil
}

func (rt *RuleTable) mustDefine(m Material, r Rule) {
	if err := rt.Define(m, r); err != nil {
		panic(err)
	}
}

// Known reports whether m has a rule.
func (rt *RuleTable) Known(m Material) bool { return rt.known.Has(m) }

// Rule returns the rule for m; unknown materials read as Immobile.
func (rt *RuleTable) Rule(m Material) Rule {
	if m >= MaxMaterials {
		return Rule{}
	}
	return rt.rules[m]
}

// SetDecay updates the decay chance of a known mobile material.
func (rt *RuleTable) SetDecay(m Material, p float64) bool {
	if !rt.Known(m) || rt.rules[m].Behavior == Immobile {
		return false
	}
	rt.rules[m].Decay = p
	return true
}

// apply evaluates the rule of the cell at (x, y). It touches at most that
// cell and the one it swaps with.
func (rt *RuleTable) apply(g *Grid, x, y int, src core.Source) {
	m := g.Get(x, y)
	if m >= MaxMaterials {
		return
	}
	r := &rt.rules[m]
	if r.Behavior == Immobile {
		return
	}
	if r.Decay > 0 && core.Chance(src, r.Decay) {
		g.Set(x, y, Empty)
		return
	}

	dy := r.direction()
	switch r.Behavior {
	case Granular:
		if r.tryMove(g, x, y, x, y+dy) {
			return
		}
		if r.tryMove(g, x, y, x-1, y+dy) {
			return
		}
		r.tryMove(g, x, y, x+1, y+dy)
	case Fluid:
		if r.tryMove(g, x, y, x, y+dy) {
			return
		}
		dx := 1
		if src.IntN(2) == 0 {
			dx = -1
		}
		r.tryMove(g, x, y, x+dx, y)
	case Rising:
		r.tryMove(g, x, y, x, y+dy)
	}
}

func (r *Rule) tryMove(g *Grid, x, y, nx, ny int) bool {
	target, ok := g.Lookup(nx, ny)
	if !ok || !r.Displaces.Has(target) {
		return false
	}
	return g.Swap(x, y, nx, ny)
}

package keyset

import (
	"fmt"

	"github.com/envtools/envctl/internal/envfile"
)

// Missing returns the keys present in b but absent from a, in b's key order:
// what a is missing relative to b.
func Missing(a, b *envfile.Mapping) []string {
	var out []string
	for _, k := range b.Keys() {
		if !a.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Extra returns the keys present in a but absent from b, in a's key order.
func Extra(a, b *envfile.Mapping) []string {
	var out []string
	for _, k := range a.Keys() {
		if !b.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Changed returns the keys present in both a and b whose values differ, in
// a's key order. Comparison is exact string inequality; no coercion or
// trimming beyond what parsing already did.
func Changed(a, b *envfile.Mapping) []string {
	var out []string
	for _, k := range a.Keys() {
		bv, ok := b.Get(k)
		if !ok {
			continue
		}
		if av, _ := a.Get(k); av != bv {
			out = append(out, k)
		}
	}
	return out
}

// Comparison is the derived, stateless result of comparing two mappings.
// It is recomputed per invocation and never stored.
type Comparison struct {
	Missing []string
	Extra   []string
	Changed []string
}

// Compare computes Missing, Extra, and Changed for a relative to b.
func Compare(a, b *envfile.Mapping) Comparison {
	return Comparison{
		Missing: Missing(a, b),
		Extra:   Extra(a, b),
		Changed: Changed(a, b),
	}
}

// Clean reports whether the comparison found no differences at all.
func (c Comparison) Clean() bool {
	return len(c.Missing) == 0 && len(c.Extra) == 0 && len(c.Changed) == 0
}

// Merge combines mappings left to right; a later mapping's value wins on
// conflicting keys while the earliest occurrence fixes the key's position.
func Merge(mappings ...*envfile.Mapping) *envfile.Mapping {
	out := envfile.NewMapping()
	for _, m := range mappings {
		for _, k := range m.Keys() {
			v, _ := m.Get(k)
			out.Set(k, v)
		}
	}
	return out
}

// Strategy selects how Sync combines a source mapping into a target.
type Strategy string

const (
	// StrategyMerge keeps the target's extra keys; source values win on
	// conflicts. Implemented as Merge(target, source).
	StrategyMerge Strategy = "merge"
	// StrategyOverwrite replaces the target entirely with the source.
	StrategyOverwrite Strategy = "overwrite"
	// StrategyPreserve keeps the target's values on conflicts; the source
	// only contributes keys the target does not have yet.
	StrategyPreserve Strategy = "preserve"
)

// ParseStrategy converts a user-supplied string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMerge, StrategyOverwrite, StrategyPreserve:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown sync strategy %q (must be merge, overwrite, or preserve)", s)
	}
}

// Sync combines source into target according to strategy and returns the
// resulting mapping. Inputs are never mutated.
func Sync(strategy Strategy, source, target *envfile.Mapping) (*envfile.Mapping, error) {
	switch strategy {
	case StrategyMerge:
		return Merge(target, source), nil
	case StrategyOverwrite:
		return source.Clone(), nil
	case StrategyPreserve:
		return Merge(source, target), nil
	default:
		return nil, fmt.Errorf("unknown sync strategy %q", strategy)
	}
}

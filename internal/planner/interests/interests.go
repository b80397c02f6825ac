package interests

import (
	"errors"
	"fmt"
)

var (
	ErrNotPermutation = errors.New("rank order is not a permutation of the theme set")
	ErrUnknownTheme   = errors.New("unknown theme")
)

// Theme identifies an interest category.
type Theme string

// ThemeInfo carries the display copy shown next to a theme.
type ThemeInfo struct {
	ID          Theme  `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Distribution maps each theme to an integer percentage in [0,100].
type Distribution map[Theme]int

// Config is the immutable theme configuration injected at construction.
// RankTable, when present, assigns a fixed weight to each rank position and
// must sum to 100; a config without a table runs in free-entry mode where
// each theme percentage is edited independently.
type Config struct {
	Themes    []ThemeInfo
	RankTable []int
}

// DefaultRankedConfig is the four-theme ranked deployment.
func DefaultRankedConfig() Config {
	return Config{
		Themes: []ThemeInfo{
			{ID: "nature", Label: "Nature", Description: "Lakes, peaks and scenic landscapes"},
			{ID: "culture", Label: "Culture", Description: "Museums, old towns and local heritage"},
			{ID: "food", Label: "Food", Description: "Regional cuisine and markets"},
			{ID: "sport", Label: "Sport", Description: "Hiking, cycling and outdoor activity"},
		},
		RankTable: []int{40, 30, 20, 10},
	}
}

// DefaultFreeEntryConfig mirrors the planner dataset's category ordering.
func DefaultFreeEntryConfig() Config {
	return Config{
		Themes: []ThemeInfo{
			{ID: "lake", Label: "Lakes", Description: "Lakeside scenery and waterfronts"},
			{ID: "mountain", Label: "Mountains", Description: "Peaks, passes and alpine views"},
			{ID: "sport", Label: "Sport", Description: "Hiking, cycling and outdoor activity"},
			{ID: "culture", Label: "Culture", Description: "Museums, old towns and local heritage"},
			{ID: "food", Label: "Food", Description: "Regional cuisine and markets"},
		},
	}
}

// Validate checks the structural invariants of a config. Ranked configs need
// a table entry per theme and a total of exactly 100.
func (c Config) Validate() error {
	if len(c.Themes) == 0 {
		return errors.New("config needs at least one theme")
	}
	seen := make(map[Theme]bool, len(c.Themes))
	for _, info := range c.Themes {
		if seen[info.ID] {
			return fmt.Errorf("duplicate theme %q", info.ID)
		}
		seen[info.ID] = true
	}
	if c.RankTable == nil {
		return nil
	}
	if len(c.RankTable) != len(c.Themes) {
		return fmt.Errorf("rank table has %d entries for %d themes", len(c.RankTable), len(c.Themes))
	}
	total := 0
	for _, w := range c.RankTable {
		total += w
	}
	if total != 100 {
		return fmt.Errorf("rank table sums to %d, want 100", total)
	}
	return nil
}

// Ranked reports whether this config derives weights from a rank order.
func (c Config) Ranked() bool { return c.RankTable != nil }

// CanonicalOrder returns the theme ids in catalog order.
func (c Config) CanonicalOrder() []Theme {
	order := make([]Theme, len(c.Themes))
	for i, info := range c.Themes {
		order[i] = info.ID
	}
	return order
}

// Has reports whether the theme belongs to this config's catalog.
func (c Config) Has(theme Theme) bool {
	for _, info := range c.Themes {
		if info.ID == theme {
			return true
		}
	}
	return false
}

// isPermutation checks that order contains every catalog theme exactly once.
func (c Config) isPermutation(order []Theme) bool {
	if len(order) != len(c.Themes) {
		return false
	}
	seen := make(map[Theme]bool, len(order))
	for _, theme := range order {
		if !c.Has(theme) || seen[theme] {
			return false
		}
		seen[theme] = true
	}
	return true
}

// DeriveRanked assigns RankTable[i] to order[i]. The order must be a full
// permutation of the catalog; anything else is a caller bug, not user input.
func (c Config) DeriveRanked(order []Theme) (Distribution, error) {
	if !c.Ranked() {
		return nil, errors.New("config has no rank table")
	}
	if !c.isPermutation(order) {
		return nil, ErrNotPermutation
	}
	dist := make(Distribution, len(order))
	for i, theme := range order {
		dist[theme] = c.RankTable[i]
	}
	return dist, nil
}

// DeriveBalanced gives every theme an equal integer share. When the theme
// count does not divide 100 the remainder goes to the earliest catalog
// themes, one point each, so the total is always exactly 100.
func (c Config) DeriveBalanced() Distribution {
	n := len(c.Themes)
	share := 100 / n
	remainder := 100 % n
	dist := make(Distribution, n)
	for i, info := range c.Themes {
		dist[info.ID] = share
		if i < remainder {
			dist[info.ID]++
		}
	}
	return dist
}

// MoveRank swaps the theme at position with its neighbour at
// position+direction. Out-of-range targets leave the order untouched.
func MoveRank(order []Theme, position, direction int) []Theme {
	target := position + direction
	if position < 0 || position >= len(order) || target < 0 || target >= len(order) {
		return order
	}
	next := make([]Theme, len(order))
	copy(next, order)
	next[position], next[target] = next[target], next[position]
	return next
}

// ReorderTo removes theme from the order and reinserts it at index. Each
// drag-over event performs exactly one such step.
func ReorderTo(order []Theme, theme Theme, index int) []Theme {
	from := -1
	for i, t := range order {
		if t == theme {
			from = i
			break
		}
	}
	if from < 0 {
		return order
	}
	if index < 0 {
		index = 0
	}
	if index >= len(order) {
		index = len(order) - 1
	}
	if index == from {
		return order
	}
	next := make([]Theme, 0, len(order))
	next = append(next, order[:from]...)
	next = append(next, order[from+1:]...)
	next = append(next[:index], append([]Theme{theme}, next[index:]...)...)
	return next
}

// TotalPercent sums the distribution.
func TotalPercent(dist Distribution) int {
	total := 0
	for _, pct := range dist {
		total += pct
	}
	return total
}

// RemainingPercent is the unassigned budget. Negative values are possible
// only in free-entry distributions and flag an over-limit state.
func RemainingPercent(dist Distribution) int {
	return 100 - TotalPercent(dist)
}

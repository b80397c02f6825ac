package interests_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpinepulse/internal/planner/interests"
)

func rankedConfig() interests.Config {
	return interests.DefaultRankedConfig()
}

func TestDeriveRanked_AllPermutationsSumTo100(t *testing.T) {
	t.Parallel()

	cfg := rankedConfig()
	themes := cfg.CanonicalOrder()

	var permute func(order []interests.Theme, k int)
	permute = func(order []interests.Theme, k int) {
		if k == len(order) {
			dist, err := cfg.DeriveRanked(order)
			require.NoError(t, err)
			assert.Equal(t, 100, interests.TotalPercent(dist), "order %v", order)
			return
		}
		for i := k; i < len(order); i++ {
			order[k], order[i] = order[i], order[k]
			permute(order, k+1)
			order[k], order[i] = order[i], order[k]
		}
	}
	permute(themes, 0)
}

func TestDeriveRanked_AssignsTableByPosition(t *testing.T) {
	t.Parallel()

	cfg := rankedConfig()
	dist, err := cfg.DeriveRanked([]interests.Theme{"sport", "nature", "culture", "food"})
	require.NoError(t, err)
	assert.Equal(t, 40, dist["sport"])
	assert.Equal(t, 30, dist["nature"])
	assert.Equal(t, 20, dist["culture"])
	assert.Equal(t, 10, dist["food"])
}

func TestDeriveRanked_RejectsBrokenOrders(t *testing.T) {
	t.Parallel()

	cfg := rankedConfig()

	_, err := cfg.DeriveRanked([]interests.Theme{"nature", "culture"})
	assert.ErrorIs(t, err, interests.ErrNotPermutation)

	_, err = cfg.DeriveRanked([]interests.Theme{"nature", "nature", "food", "sport"})
	assert.ErrorIs(t, err, interests.ErrNotPermutation)

	_, err = cfg.DeriveRanked([]interests.Theme{"nature", "culture", "food", "beach"})
	assert.ErrorIs(t, err, interests.ErrNotPermutation)
}

func TestDeriveBalanced_SumsTo100ForAwkwardCounts(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4, 5, 6, 7, 11} {
		themes := make([]interests.ThemeInfo, n)
		for i := range themes {
			themes[i] = interests.ThemeInfo{ID: interests.Theme(string(rune('a' + i)))}
		}
		cfg := interests.Config{Themes: themes}
		dist := cfg.DeriveBalanced()
		assert.Equal(t, 100, interests.TotalPercent(dist), "n=%d", n)

		// remainder lands on the earliest themes, one point each
		share := 100 / n
		for i, info := range themes {
			want := share
			if i < 100%n {
				want++
			}
			assert.Equal(t, want, dist[info.ID], "n=%d theme=%s", n, info.ID)
		}
	}
}

func TestMoveRank(t *testing.T) {
	t.Parallel()

	order := []interests.Theme{"nature", "culture", "food", "sport"}

	moved := interests.MoveRank(order, 1, 1)
	assert.Equal(t, []interests.Theme{"nature", "food", "culture", "sport"}, moved)
	assert.Equal(t, []interests.Theme{"nature", "culture", "food", "sport"}, order, "input not mutated")

	assert.Equal(t, order, interests.MoveRank(order, 0, -1), "top cannot move up")
	assert.Equal(t, order, interests.MoveRank(order, 3, 1), "bottom cannot move down")
	assert.Equal(t, order, interests.MoveRank(order, 9, 1), "bad position is a no-op")
}

func TestReorderTo(t *testing.T) {
	t.Parallel()

	order := []interests.Theme{"nature", "culture", "food", "sport"}

	assert.Equal(t,
		[]interests.Theme{"culture", "food", "nature", "sport"},
		interests.ReorderTo(order, "nature", 2))
	assert.Equal(t,
		[]interests.Theme{"sport", "nature", "culture", "food"},
		interests.ReorderTo(order, "sport", 0))
	assert.Equal(t, order, interests.ReorderTo(order, "beach", 1), "unknown theme is a no-op")
	assert.Equal(t,
		[]interests.Theme{"nature", "culture", "food", "sport"},
		interests.ReorderTo(order, "nature", -5), "index clamps low")
}

func TestToggleBalanced_RestoresExactOrder(t *testing.T) {
	t.Parallel()

	m, err := interests.NewModel(rankedConfig())
	require.NoError(t, err)

	require.NoError(t, m.Move(0, 1))
	require.NoError(t, m.Move(2, 1))
	before := append([]interests.Theme(nil), m.Order...)
	beforeDist := interests.Distribution{}
	for k, v := range m.Dist {
		beforeDist[k] = v
	}

	require.NoError(t, m.ToggleBalanced())
	assert.True(t, m.Balanced)
	assert.Equal(t, 100, m.Total())
	assert.Equal(t, 25, m.Dist["nature"])

	// reorder input is suspended while balanced
	require.NoError(t, m.Move(0, 1))
	require.NoError(t, m.Reorder("food", 0))

	require.NoError(t, m.ToggleBalanced())
	assert.False(t, m.Balanced)
	assert.Equal(t, before, m.Order)
	assert.Equal(t, beforeDist, m.Dist)
	assert.Nil(t, m.BeforeToggle)
}

func TestFreeEntry_SetThemeCapsAtRemainingBudget(t *testing.T) {
	t.Parallel()

	m, err := interests.NewModel(interests.DefaultFreeEntryConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Total())
	assert.Equal(t, 100, m.Remaining())

	require.NoError(t, m.SetTheme("lake", 60))
	require.NoError(t, m.SetTheme("mountain", 30))
	require.NoError(t, m.SetTheme("culture", 50)) // only 10 left
	assert.Equal(t, 10, m.Dist["culture"])
	assert.Equal(t, 100, m.Total())
	assert.Equal(t, 0, m.Remaining())

	// lowering one theme reopens the budget
	require.NoError(t, m.SetTheme("lake", 20))
	require.NoError(t, m.SetTheme("food", 25))
	assert.Equal(t, 25, m.Dist["food"])
	assert.Equal(t, 85, m.Total())

	assert.ErrorIs(t, m.SetTheme("beach", 10), interests.ErrUnknownTheme)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, interests.DefaultRankedConfig().Validate())
	assert.NoError(t, interests.DefaultFreeEntryConfig().Validate())

	bad := interests.Config{
		Themes:    []interests.ThemeInfo{{ID: "a"}, {ID: "b"}},
		RankTable: []int{60, 50},
	}
	assert.Error(t, bad.Validate(), "table must sum to 100")

	dup := interests.Config{Themes: []interests.ThemeInfo{{ID: "a"}, {ID: "a"}}}
	assert.Error(t, dup.Validate())
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpinepulse/internal/models/response_models"
	"alpinepulse/internal/planner/interests"
	"alpinepulse/internal/planner/triprequest"
	mem "alpinepulse/pkg/memcache"
)

func TestPlanSessionCache_RoundTrip(t *testing.T) {
	t.Parallel()

	cache := NewPlanSessionCache(mem.NewSessionBlobs())
	inputs := StoredInputs{
		Trip: triprequest.TripSpec{
			OriginCity:      "zurich",
			DestinationCity: "lugano",
			TripDays:        7,
			Season:          triprequest.Summer,
		},
		Order:        []interests.Theme{"food", "nature", "culture", "sport"},
		Distribution: interests.Distribution{"food": 40, "nature": 30, "culture": 20, "sport": 10},
		Selection:    []string{"castelgrande"},
	}

	cache.SaveInputs("s1", inputs)
	got, ok := cache.RestoreInputs("s1")
	require.True(t, ok)
	assert.Equal(t, inputs, got)

	plan := &response_models.PlanResponse{FromCity: "zurich", ToCity: "lugano", NumDays: 7, Season: "summer"}
	cache.SavePlan("s1", plan)
	gotPlan, ok := cache.RestorePlan("s1")
	require.True(t, ok)
	assert.Equal(t, plan, gotPlan)
}

func TestPlanSessionCache_MissIsAbsence(t *testing.T) {
	t.Parallel()

	cache := NewPlanSessionCache(mem.NewSessionBlobs())

	_, ok := cache.RestoreInputs("nobody")
	assert.False(t, ok)
	_, ok = cache.RestorePlan("nobody")
	assert.False(t, ok)
}

func TestPlanSessionCache_CorruptBlobClearsAndReadsAsAbsent(t *testing.T) {
	t.Parallel()

	store := mem.NewSessionBlobs()
	cache := NewPlanSessionCache(store)

	store.Set("planner:inputs:s1", []byte("{not json"), time.Minute)
	store.Set("planner:plan:s1", []byte(`"wrong shape"`), time.Minute)

	_, ok := cache.RestoreInputs("s1")
	assert.False(t, ok, "corrupt inputs read as cache miss")
	_, gone := store.Get("planner:inputs:s1")
	assert.False(t, gone, "corrupt entry cleared so the next restore does not re-fail")

	_, ok = cache.RestorePlan("s1")
	assert.False(t, ok)
	_, gone = store.Get("planner:plan:s1")
	assert.False(t, gone)
}

func TestPlanSessionCache_ClearRemovesBothKeys(t *testing.T) {
	t.Parallel()

	store := mem.NewSessionBlobs()
	cache := NewPlanSessionCache(store)

	cache.SaveInputs("s1", StoredInputs{})
	cache.SavePlan("s1", &response_models.PlanResponse{})

	cache.Clear("s1")
	_, ok := cache.RestoreInputs("s1")
	assert.False(t, ok)
	_, ok = cache.RestorePlan("s1")
	assert.False(t, ok)
}

package services

import (
	"encoding/json"
	"time"

	"alpinepulse/internal/models/response_models"
	"alpinepulse/internal/planner/interests"
	"alpinepulse/internal/planner/triprequest"
	mem "alpinepulse/pkg/memcache"
)

const sessionTTL = 12 * time.Hour

// StoredInputs is the opaque snapshot of the last submitted planner form.
type StoredInputs struct {
	Trip         triprequest.TripSpec   `json:"trip"`
	Order        []interests.Theme      `json:"order"`
	Balanced     bool                   `json:"balanced"`
	BeforeToggle []interests.Theme      `json:"before_toggle,omitempty"`
	Distribution interests.Distribution `json:"distribution"`
	Selection    []string               `json:"selection,omitempty"`
	Done         bool                   `json:"done"`
}

// PlanSessionCache keeps two independent blobs per browser session: the last
// planner inputs and the last received plan. It is best-effort only —
// anything that does not decode cleanly is treated as absent and the corrupt
// entry is cleared so later restores do not keep failing.
type PlanSessionCache struct {
	store mem.BlobStore
}

func NewPlanSessionCache(store mem.BlobStore) *PlanSessionCache {
	return &PlanSessionCache{store: store}
}

func inputsKey(sessionID string) string { return "planner:inputs:" + sessionID }
func planKey(sessionID string) string   { return "planner:plan:" + sessionID }

func (c *PlanSessionCache) SaveInputs(sessionID string, inputs StoredInputs) {
	blob, err := json.Marshal(inputs)
	if err != nil {
		return
	}
	c.store.Set(inputsKey(sessionID), blob, sessionTTL)
}

func (c *PlanSessionCache) RestoreInputs(sessionID string) (StoredInputs, bool) {
	blob, ok := c.store.Get(inputsKey(sessionID))
	if !ok {
		return StoredInputs{}, false
	}
	var inputs StoredInputs
	if err := json.Unmarshal(blob, &inputs); err != nil {
		c.store.Delete(inputsKey(sessionID))
		return StoredInputs{}, false
	}
	return inputs, true
}

func (c *PlanSessionCache) SavePlan(sessionID string, plan *response_models.PlanResponse) {
	blob, err := json.Marshal(plan)
	if err != nil {
		return
	}
	c.store.Set(planKey(sessionID), blob, sessionTTL)
}

func (c *PlanSessionCache) RestorePlan(sessionID string) (*response_models.PlanResponse, bool) {
	blob, ok := c.store.Get(planKey(sessionID))
	if !ok {
		return nil, false
	}
	var plan response_models.PlanResponse
	if err := json.Unmarshal(blob, &plan); err != nil {
		c.store.Delete(planKey(sessionID))
		return nil, false
	}
	return &plan, true
}

func (c *PlanSessionCache) Clear(sessionID string) {
	c.store.Delete(inputsKey(sessionID))
	c.store.Delete(planKey(sessionID))
}

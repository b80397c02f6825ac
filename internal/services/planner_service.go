package services

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"alpinepulse/internal/models/request_models"
	"alpinepulse/internal/models/response_models"
	"alpinepulse/internal/planner/interests"
	"alpinepulse/internal/planner/mustvisit"
	"alpinepulse/internal/planner/percentfield"
	"alpinepulse/internal/planner/triprequest"
	"alpinepulse/internal/repositories"
	"alpinepulse/pkg/clock"
	"alpinepulse/pkg/utils"
)

// PlannerServiceInterface drives one planner session per browser session:
// the trip frame, the interest weights, the must-visit selection flow, and
// the submit to the external planning service.
type PlannerServiceInterface interface {
	OpenSession(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error)
	GetState(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error)
	UpdateTrip(ctx context.Context, sessionID string, req request_models.UpdateTripRequest) (*response_models.PlannerSessionState, error)
	MoveRank(ctx context.Context, sessionID string, position, direction int) (*response_models.PlannerSessionState, error)
	ReorderRank(ctx context.Context, sessionID string, theme string, index int) (*response_models.PlannerSessionState, error)
	ToggleBalanced(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error)
	SetWeight(ctx context.Context, sessionID, theme, rawValue string) (*response_models.PlannerSessionState, error)
	NextCandidate(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error)
	PrevCandidate(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error)
	AddMustVisit(ctx context.Context, sessionID, identifier string) (*response_models.PlannerSessionState, error)
	RemoveMustVisit(ctx context.Context, sessionID, identifier string) (*response_models.PlannerSessionState, error)
	FinishSelection(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error)
	ReopenSelection(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error)
	ResetCandidates(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error)
	Submit(ctx context.Context, sessionID string) (*response_models.PlanResponse, error)
	CachedPlan(ctx context.Context, sessionID string) (*response_models.PlanResponse, error)
	ResetSession(ctx context.Context, sessionID string) error
}

type plannerSession struct {
	mu         sync.Mutex
	trip       triprequest.TripSpec
	weights    *interests.Model
	selector   *mustvisit.Selector
	submitting bool
}

type PlannerService struct {
	attractionRepo repositories.AttractionRepository
	planClient     PlanServiceInterface
	cache          *PlanSessionCache
	cfg            interests.Config
	clk            clock.Clock

	mu       sync.Mutex
	sessions map[string]*plannerSession
	seed     func() int64
}

func NewPlannerService(
	attractionRepo repositories.AttractionRepository,
	planClient PlanServiceInterface,
	cache *PlanSessionCache,
	cfg interests.Config,
	clk clock.Clock,
) *PlannerService {
	return &PlannerService{
		attractionRepo: attractionRepo,
		planClient:     planClient,
		cache:          cache,
		cfg:            cfg,
		clk:            clk,
		sessions:       make(map[string]*plannerSession),
		seed:           func() int64 { return time.Now().UnixNano() },
	}
}

// SetShuffleSeedForTest pins the candidate shuffle for deterministic tests.
func (s *PlannerService) SetShuffleSeedForTest(seed int64) {
	s.seed = func() int64 { return seed }
}

func (s *PlannerService) OpenSession(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if ok {
		return s.snapshotLocked(sessionID, sess), nil
	}

	sess, err := s.newSession(ctx)
	if err != nil {
		return nil, err
	}

	// cached inputs from a previous page visit restore the form; anything
	// that does not fit the current config degrades to a fresh session
	if stored, ok := s.cache.RestoreInputs(sessionID); ok {
		if !s.applyStored(sess, stored) {
			s.cache.Clear(sessionID)
		}
	}

	s.mu.Lock()
	if existing, raced := s.sessions[sessionID]; raced {
		sess = existing
	} else {
		s.sessions[sessionID] = sess
	}
	s.mu.Unlock()

	return s.snapshotLocked(sessionID, sess), nil
}

func (s *PlannerService) newSession(ctx context.Context) (*plannerSession, error) {
	model, err := interests.NewModel(s.cfg)
	if err != nil {
		return nil, err
	}

	attractions, err := s.attractionRepo.ListAttractions(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	candidates := make([]mustvisit.Candidate, 0, len(attractions))
	for _, a := range attractions {
		candidates = append(candidates, mustvisit.Candidate{
			ID:       a.Identifier,
			Name:     a.Name,
			City:     a.City.DisplayName,
			ImageRef: a.Photo,
		})
	}

	rng := rand.New(rand.NewSource(s.seed()))
	return &plannerSession{
		trip:     triprequest.TripSpec{TripDays: triprequest.MinTripDays},
		weights:  model,
		selector: mustvisit.NewSelector(candidates, s.clk, rng),
	}, nil
}

// applyStored replays a cached form snapshot onto a fresh session. Returns
// false when the stored shape no longer matches the theme config.
func (s *PlannerService) applyStored(sess *plannerSession, stored StoredInputs) bool {
	if s.cfg.Ranked() {
		if _, err := s.cfg.DeriveRanked(stored.Order); err != nil {
			return false
		}
	}
	for theme := range stored.Distribution {
		if !s.cfg.Has(theme) {
			return false
		}
	}

	sess.trip = stored.Trip
	sess.trip.TripDays = triprequest.ClampDays(sess.trip.TripDays)
	if stored.Order != nil {
		sess.weights.Order = stored.Order
	}
	sess.weights.Balanced = stored.Balanced
	sess.weights.BeforeToggle = stored.BeforeToggle
	if stored.Distribution != nil {
		sess.weights.Dist = stored.Distribution
	}
	sess.selector.RestoreSelection(stored.Selection, stored.Done)
	return true
}

func (s *PlannerService) session(sessionID string) (*plannerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return sess, nil
}

// mutate runs fn under the session lock, persists the inputs snapshot, and
// returns the refreshed state.
func (s *PlannerService) mutate(sessionID string, fn func(*plannerSession) error) (*response_models.PlannerSessionState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	if err := fn(sess); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	s.persist(sessionID, sess)
	state := s.snapshot(sessionID, sess)
	sess.mu.Unlock()
	return state, nil
}

// persist is best-effort; callers hold the session lock.
func (s *PlannerService) persist(sessionID string, sess *plannerSession) {
	s.cache.SaveInputs(sessionID, StoredInputs{
		Trip:         sess.trip,
		Order:        sess.weights.Order,
		Balanced:     sess.weights.Balanced,
		BeforeToggle: sess.weights.BeforeToggle,
		Distribution: sess.weights.Dist,
		Selection:    sess.selector.Selected(),
		Done:         sess.selector.State() == mustvisit.Done,
	})
}

func (s *PlannerService) GetState(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshotLocked(sessionID, sess), nil
}

func (s *PlannerService) UpdateTrip(ctx context.Context, sessionID string, req request_models.UpdateTripRequest) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		sess.trip = triprequest.TripSpec{
			OriginCity:      req.OriginCity,
			DestinationCity: req.DestinationCity,
			TripDays:        triprequest.ClampDays(req.TripDays),
			Season:          triprequest.Season(req.Season),
		}
		return nil
	})
}

func (s *PlannerService) MoveRank(ctx context.Context, sessionID string, position, direction int) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		return sess.weights.Move(position, direction)
	})
}

func (s *PlannerService) ReorderRank(ctx context.Context, sessionID string, theme string, index int) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		err := sess.weights.Reorder(interests.Theme(theme), index)
		if errors.Is(err, interests.ErrUnknownTheme) {
			return utils.ErrInvalidInput
		}
		return err
	})
}

func (s *PlannerService) ToggleBalanced(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		return sess.weights.ToggleBalanced()
	})
}

func (s *PlannerService) SetWeight(ctx context.Context, sessionID, theme, rawValue string) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		pct := percentfield.ToInt(percentfield.Sanitize(rawValue, true))
		err := sess.weights.SetTheme(interests.Theme(theme), pct)
		if errors.Is(err, interests.ErrUnknownTheme) {
			return utils.ErrInvalidInput
		}
		return err
	})
}

func (s *PlannerService) NextCandidate(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		sess.selector.Next()
		return nil
	})
}

func (s *PlannerService) PrevCandidate(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		sess.selector.Prev()
		return nil
	})
}

func (s *PlannerService) AddMustVisit(ctx context.Context, sessionID, identifier string) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		known := false
		for _, c := range sess.selector.Candidates() {
			if c.ID == identifier {
				known = true
				break
			}
		}
		if !known {
			return utils.ErrAttractionMissing
		}
		sess.selector.Add(identifier, sess.trip.TripDays)
		return nil
	})
}

func (s *PlannerService) RemoveMustVisit(ctx context.Context, sessionID, identifier string) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		sess.selector.Remove(identifier)
		return nil
	})
}

func (s *PlannerService) FinishSelection(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		sess.selector.Finish()
		return nil
	})
}

func (s *PlannerService) ReopenSelection(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		sess.selector.Reopen()
		return nil
	})
}

func (s *PlannerService) ResetCandidates(ctx context.Context, sessionID string) (*response_models.PlannerSessionState, error) {
	return s.mutate(sessionID, func(sess *plannerSession) error {
		sess.selector.ResetCandidates()
		return nil
	})
}

// Submit builds the wire payload and posts it to the planning service. One
// in-flight request per session; a second submit is rejected, not queued.
func (s *PlannerService) Submit(ctx context.Context, sessionID string) (*response_models.PlanResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.submitting {
		sess.mu.Unlock()
		return nil, utils.ErrSubmitInFlight
	}
	req, err := triprequest.BuildRequest(sess.trip, sess.weights.Dist, sess.selector.Selected())
	if err != nil {
		sess.mu.Unlock()
		return nil, utils.ErrNotReady
	}
	sess.submitting = true
	s.persist(sessionID, sess)
	sess.mu.Unlock()

	plan, planErr := s.planClient.GeneratePlan(ctx, req)

	sess.mu.Lock()
	sess.submitting = false
	sess.mu.Unlock()

	if planErr != nil {
		return nil, planErr
	}
	s.cache.SavePlan(sessionID, plan)
	return plan, nil
}

func (s *PlannerService) CachedPlan(ctx context.Context, sessionID string) (*response_models.PlanResponse, error) {
	plan, ok := s.cache.RestorePlan(sessionID)
	if !ok {
		return nil, utils.ErrPlanNotCached
	}
	return plan, nil
}

// ResetSession drops the in-memory session and both cache blobs.
func (s *PlannerService) ResetSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	s.cache.Clear(sessionID)
	return nil
}

func (s *PlannerService) snapshotLocked(sessionID string, sess *plannerSession) *response_models.PlannerSessionState {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshot(sessionID, sess)
}

// snapshot assembles the render state; callers hold the session lock.
func (s *PlannerService) snapshot(sessionID string, sess *plannerSession) *response_models.PlannerSessionState {
	sel := sess.selector
	state := &response_models.PlannerSessionState{
		SessionID:    sessionID,
		Trip:         sess.trip,
		Themes:       s.cfg.Themes,
		Balanced:     sess.weights.Balanced,
		Distribution: sess.weights.Dist,
		TotalPercent: sess.weights.Total(),
		Remaining:    sess.weights.Remaining(),
		Selection: response_models.SelectionState{
			State:      sel.State(),
			Candidates: sel.Candidates(),
			Cursor:     sel.Cursor(),
			Selected:   sel.Selected(),
			Capacity:   mustvisit.Capacity(sess.trip.TripDays),
			Message:    sel.Message(),
			Saved:      sel.SelectionSaved(),
		},
		Ready:          triprequest.IsReady(sess.trip, sess.weights.Dist),
		SubmitInFlight: sess.submitting,
	}
	if s.cfg.Ranked() {
		state.Order = sess.weights.Order
	}
	return state
}

package mustvisit

import (
	"fmt"
	"math/rand"
	"time"

	"alpinepulse/pkg/clock"
)

// State is the selection flow phase.
type State string

const (
	// Browsing keeps the cursor live for navigation and add/remove.
	Browsing State = "browsing"
	// Confirming is the short flash after a successful add; navigation and
	// further adds are gated off until it expires.
	Confirming State = "confirming"
	// Done is terminal but reversible: display-only, removal still allowed.
	Done State = "done"
)

// DefaultConfirmDelay matches the flash the planner form shows after an add.
const DefaultConfirmDelay = 1200 * time.Millisecond

// Candidate is one attraction offered for must-visit selection.
type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	ImageRef string `json:"image_ref,omitempty"`
}

// Capacity is the must-visit cap for a trip length. Never stored; every
// check recomputes it so day-count edits take effect immediately.
func Capacity(tripDays int) int {
	if tripDays < 1 {
		tripDays = 1
	}
	if tripDays > 21 {
		tripDays = 21
	}
	if tripDays <= 2 {
		return 0
	}
	return tripDays - 2
}

// Selector owns the shuffled candidate list, the cursor, and the
// capacity-bounded selection set for one planning session.
type Selector struct {
	clk          clock.Clock
	rng          *rand.Rand
	confirmDelay time.Duration

	source     []Candidate
	candidates []Candidate
	cursor     int
	selected   map[string]bool
	state      State
	confirmAt  time.Time
	message    string
	saved      bool
}

// NewSelector shuffles the source list once and starts in Browsing with an
// empty selection. rng seeds the shuffle; pass a fixed-seed rand for
// deterministic tests, or nil for a time-seeded one.
func NewSelector(source []Candidate, clk clock.Clock, rng *rand.Rand) *Selector {
	if clk == nil {
		clk = clock.NewSystemClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Selector{
		clk:          clk,
		rng:          rng,
		confirmDelay: DefaultConfirmDelay,
		source:       append([]Candidate(nil), source...),
	}
	s.reshuffle()
	s.selected = make(map[string]bool)
	s.state = Browsing
	return s
}

// SetConfirmDelay overrides the Confirming flash duration.
func (s *Selector) SetConfirmDelay(d time.Duration) { s.confirmDelay = d }

func (s *Selector) reshuffle() {
	s.candidates = append([]Candidate(nil), s.source...)
	s.rng.Shuffle(len(s.candidates), func(i, j int) {
		s.candidates[i], s.candidates[j] = s.candidates[j], s.candidates[i]
	})
	s.cursor = 0
}

// Tick advances the timed Confirming exit. Callers pass the current time so
// tests can fast-forward without sleeping; handlers call it with clock time
// before reading or mutating state.
func (s *Selector) Tick(now time.Time) {
	if s.state == Confirming && !now.Before(s.confirmAt) {
		s.message = ""
		s.state = Browsing
		s.advanceCursor()
	}
}

// tick with the injected clock.
func (s *Selector) tickNow() { s.Tick(s.clk.Now()) }

// State reports the current phase after applying any expired timer.
func (s *Selector) State() State {
	s.tickNow()
	return s.state
}

// Candidates returns the session's fixed presentation order.
func (s *Selector) Candidates() []Candidate { return s.candidates }

// Cursor returns the current candidate index.
func (s *Selector) Cursor() int { return s.cursor }

// Current returns the candidate under the cursor.
func (s *Selector) Current() (Candidate, bool) {
	if len(s.candidates) == 0 {
		return Candidate{}, false
	}
	return s.candidates[s.cursor], true
}

// Message returns the active inline message, if any.
func (s *Selector) Message() string {
	s.tickNow()
	return s.message
}

// Selected returns the chosen identifiers in presentation order.
func (s *Selector) Selected() []string {
	out := make([]string, 0, len(s.selected))
	for _, c := range s.candidates {
		if s.selected[c.ID] {
			out = append(out, c.ID)
		}
	}
	return out
}

// Size returns the selection count.
func (s *Selector) Size() int { return len(s.selected) }

// SelectionSaved reports whether the selection filled up to capacity or to
// the whole candidate list on the last add.
func (s *Selector) SelectionSaved() bool { return s.saved }

// Next moves the cursor forward one position, wrapping at the end. Legal
// only while Browsing, and a no-op when there is nothing to rotate to.
func (s *Selector) Next() {
	s.tickNow()
	if s.state != Browsing || len(s.candidates) <= 1 {
		return
	}
	s.cursor = (s.cursor + 1) % len(s.candidates)
}

// Prev moves the cursor back one position, wrapping at the front.
func (s *Selector) Prev() {
	s.tickNow()
	if s.state != Browsing || len(s.candidates) <= 1 {
		return
	}
	s.cursor = (s.cursor - 1 + len(s.candidates)) % len(s.candidates)
}

// Add puts the identifier into the selection set, bounded by the live
// capacity for tripDays. A re-add of a selected candidate is idempotent but
// still runs the confirm-and-advance flow. Capacity problems set an inline
// message and leave the selection untouched.
func (s *Selector) Add(id string, tripDays int) {
	s.tickNow()
	if s.state != Browsing {
		return
	}
	limit := Capacity(tripDays)
	if limit == 0 {
		s.message = fmt.Sprintf("A %d-day trip has no room for must-visit stops; plan at least 3 days.", tripDays)
		return
	}
	if !s.selected[id] && len(s.selected) >= limit {
		s.message = fmt.Sprintf("Limit reached: at most %d must-visit stops fit a %d-day trip.", limit, tripDays)
		return
	}
	if !s.contains(id) {
		return
	}
	s.selected[id] = true
	if len(s.selected) >= limit || len(s.selected) == len(s.candidates) {
		s.saved = true
	}
	s.message = "Added to your must-visit list."
	s.state = Confirming
	s.confirmAt = s.clk.Now().Add(s.confirmDelay)
}

func (s *Selector) contains(id string) bool {
	for _, c := range s.candidates {
		if c.ID == id {
			return true
		}
	}
	return false
}

// advanceCursor repositions after an add: nearest unselected after the
// cursor, then nearest before it searching backwards, then the first
// unselected in list order. With everything selected the cursor stays put.
func (s *Selector) advanceCursor() {
	n := len(s.candidates)
	for i := s.cursor + 1; i < n; i++ {
		if !s.selected[s.candidates[i].ID] {
			s.cursor = i
			return
		}
	}
	for i := s.cursor - 1; i >= 0; i-- {
		if !s.selected[s.candidates[i].ID] {
			s.cursor = i
			return
		}
	}
	for i := 0; i < n; i++ {
		if !s.selected[s.candidates[i].ID] {
			s.cursor = i
			return
		}
	}
}

// Remove drops the identifier if present and clears any active message.
// Legal in Browsing and Done; the cursor never moves.
func (s *Selector) Remove(id string) {
	s.tickNow()
	if s.state != Browsing && s.state != Done {
		return
	}
	delete(s.selected, id)
	s.message = ""
	s.saved = false
}

// Finish marks the selection done. Reachable at any point, not gated on
// capacity; a pending Confirming flash is cancelled.
func (s *Selector) Finish() {
	s.tickNow()
	if s.state == Done {
		return
	}
	s.message = ""
	s.state = Done
}

// Reopen returns from Done to Browsing, parking the cursor on the first
// unselected candidate, or index 0 when everything is selected.
func (s *Selector) Reopen() {
	s.tickNow()
	if s.state != Done {
		return
	}
	s.state = Browsing
	s.cursor = 0
	for i, c := range s.candidates {
		if !s.selected[c.ID] {
			s.cursor = i
			break
		}
	}
}

// RestoreSelection seeds a previously cached selection. Unknown identifiers
// are dropped rather than failing the restore. The cursor parks on the
// first unselected candidate.
func (s *Selector) RestoreSelection(ids []string, done bool) {
	s.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		if s.contains(id) {
			s.selected[id] = true
		}
	}
	if done {
		s.state = Done
	} else {
		s.state = Browsing
	}
	s.cursor = 0
	for i, c := range s.candidates {
		if !s.selected[c.ID] {
			s.cursor = i
			break
		}
	}
}

// ResetCandidates re-shuffles the list, clears the selection, and returns
// to Browsing at index 0.
func (s *Selector) ResetCandidates() {
	s.reshuffle()
	s.selected = make(map[string]bool)
	s.message = ""
	s.saved = false
	s.state = Browsing
}

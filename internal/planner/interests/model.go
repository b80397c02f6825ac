package interests

// Model is the mutable weight state for one planning session. The
// pre-balanced snapshot lives on the record itself so save/restore and tests
// can read and seed it directly.
type Model struct {
	cfg Config

	Order        []Theme      `json:"order"`
	Balanced     bool         `json:"balanced"`
	BeforeToggle []Theme      `json:"before_toggle,omitempty"`
	Dist         Distribution `json:"distribution"`
}

// NewModel starts from the catalog order. Ranked configs get the ranked
// distribution for that order; free-entry configs start with every theme at
// zero.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Model{cfg: cfg, Order: cfg.CanonicalOrder()}
	if cfg.Ranked() {
		dist, err := cfg.DeriveRanked(m.Order)
		if err != nil {
			return nil, err
		}
		m.Dist = dist
	} else {
		m.Dist = make(Distribution, len(cfg.Themes))
		for _, info := range cfg.Themes {
			m.Dist[info.ID] = 0
		}
	}
	return m, nil
}

// Config returns the injected catalog.
func (m *Model) Config() Config { return m.cfg }

// Move applies a neighbour swap to the rank order and re-derives the ranked
// distribution. Ignored while balanced mode is active.
func (m *Model) Move(position, direction int) error {
	if !m.cfg.Ranked() || m.Balanced {
		return nil
	}
	next := MoveRank(m.Order, position, direction)
	dist, err := m.cfg.DeriveRanked(next)
	if err != nil {
		return err
	}
	m.Order, m.Dist = next, dist
	return nil
}

// Reorder drags a theme to the given index. Ignored while balanced.
func (m *Model) Reorder(theme Theme, index int) error {
	if !m.cfg.Ranked() || m.Balanced {
		return nil
	}
	if !m.cfg.Has(theme) {
		return ErrUnknownTheme
	}
	next := ReorderTo(m.Order, theme, index)
	dist, err := m.cfg.DeriveRanked(next)
	if err != nil {
		return err
	}
	m.Order, m.Dist = next, dist
	return nil
}

// ToggleBalanced flips balanced mode. Entering snapshots the current order;
// leaving restores the snapshot and re-derives the ranked weights from it.
func (m *Model) ToggleBalanced() error {
	if m.Balanced {
		m.Balanced = false
		if m.BeforeToggle != nil {
			m.Order = m.BeforeToggle
			m.BeforeToggle = nil
		}
		if m.cfg.Ranked() {
			dist, err := m.cfg.DeriveRanked(m.Order)
			if err != nil {
				return err
			}
			m.Dist = dist
		}
		return nil
	}
	snapshot := make([]Theme, len(m.Order))
	copy(snapshot, m.Order)
	m.BeforeToggle = snapshot
	m.Balanced = true
	m.Dist = m.cfg.DeriveBalanced()
	return nil
}

// SetTheme assigns a percentage in free-entry mode, capping the request at
// the remaining budget so the total can never pass 100 through this path.
func (m *Model) SetTheme(theme Theme, requested int) error {
	if m.cfg.Ranked() {
		return nil
	}
	if !m.cfg.Has(theme) {
		return ErrUnknownTheme
	}
	others := 0
	for t, pct := range m.Dist {
		if t != theme {
			others += pct
		}
	}
	budget := 100 - others
	if budget < 0 {
		budget = 0
	}
	if requested < 0 {
		requested = 0
	}
	if requested > budget {
		requested = budget
	}
	m.Dist[theme] = requested
	return nil
}

// Total and Remaining expose the derived percentage queries.
func (m *Model) Total() int     { return TotalPercent(m.Dist) }
func (m *Model) Remaining() int { return RemainingPercent(m.Dist) }

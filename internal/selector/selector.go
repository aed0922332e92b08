package selector

// Selector cycles an active index through [0, count) on each rising edge of the advance input.
// It polls a level each frame and remembers the previous one, so holding the key advances only once.
type Selector struct {
	count     int
	active    int
	held      bool
	onAdvance func(ordinal int)
}

// New returns a selector at index 0. onAdvance, if non-nil, is called once per advance
// with the new index counted from 1.
func New(count int, onAdvance func(ordinal int)) *Selector {
	if count < 1 {
		count = 1
	}
	return &Selector{count: count, onAdvance: onAdvance}
}

// Update feeds the current level of the advance input. It reports whether the active index changed.
func (s *Selector) Update(pressed bool) bool {
	rising := pressed && !s.held
	s.held = pressed
	if !rising {
		return false
	}
	s.active = (s.active + 1) % s.count
	if s.onAdvance != nil {
		s.onAdvance(s.active + 1)
	}
	return true
}

// Active returns the current index.
func (s *Selector) Active() int {
	return s.active
}

// Count returns the number of positions the selector cycles through.
func (s *Selector) Count() int {
	return s.count
}

package theme

import "sync"

// Manager coordinates access to the active Theme and notifies subscribers
// when it is replaced.
type Manager struct {
	mu          sync.RWMutex
	theme       Theme
	subscribers []func(Theme)
}

// NewManager allocates a Manager holding the provided theme.
func NewManager(th Theme) *Manager {
	return &Manager{theme: th}
}

// Theme returns the active theme.
func (m *Manager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// Set replaces the active theme and calls every subscriber with it.
func (m *Manager) Set(th Theme) {
	m.mu.Lock()
	m.theme = th
	subscribers := make([]func(Theme), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subscribers {
		fn(th)
	}
}

// Switch recomposes the theme for a new design and mode.
func (m *Manager) Switch(design Design, mode Mode, overrides *Overrides) Theme {
	th := Compose(design, mode, overrides)
	m.Set(th)
	return th
}

// Subscribe registers fn to run after every Set.
func (m *Manager) Subscribe(fn func(Theme)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}

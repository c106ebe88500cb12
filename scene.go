package grove

import "go.uber.org/zap"

// StateManager holds the top-level game states (title, menus, playing, ...)
// and forwards the game loop to the active one. States are registered once
// and addressed by the index Add returned.
type StateManager struct {
	states  []Loop
	current Loop
}

// NewStateManager creates a manager with no states.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// Add registers state, makes it active, and returns its id.
func (m *StateManager) Add(state Loop) int {
	m.states = append(m.states, state)
	m.current = state
	return len(m.states) - 1
}

// Get returns the state registered under id, or nil when id is out of range.
func (m *StateManager) Get(id int) Loop {
	if id < 0 || id >= len(m.states) {
		return nil
	}
	return m.states[id]
}

// SwitchTo activates the state registered under id. Out-of-range ids are
// ignored.
func (m *StateManager) SwitchTo(id int) {
	if id < 0 || id >= len(m.states) {
		if globalDebug {
			log.Debug("ignoring switch to unknown state", zap.Int("id", id))
		}
		return
	}
	m.current = m.states[id]
}

// Current returns the active state, or nil before the first Add.
func (m *StateManager) Current() Loop { return m.current }

// Len returns the number of registered states.
func (m *StateManager) Len() int { return len(m.states) }

func (m *StateManager) HandleInput(in Input, dt float64) {
	if m.current != nil {
		m.current.HandleInput(in, dt)
	}
}

func (m *StateManager) Update(dt float64) {
	if m.current != nil {
		m.current.Update(dt)
	}
}

func (m *StateManager) Draw(r Renderer) {
	if m.current != nil {
		m.current.Draw(r)
	}
}

func (m *StateManager) Reset() {
	if m.current != nil {
		m.current.Reset()
	}
}

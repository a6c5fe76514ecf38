package input

// Snapshot is the input sampled for one tick.
// Held drives paddle movement and quit; Pressed carries discrete key-downs
// used for the replay decision.
type Snapshot struct {
	Held    [keyCount]bool
	Pressed []Key

	// Closed is set once the terminal stops delivering events
	Closed bool
}

// NewSnapshot builds a snapshot from held keys, mostly for tests and callers
// that synthesise input
func NewSnapshot(held ...Key) Snapshot {
	var s Snapshot
	for _, k := range held {
		s.Hold(k)
	}
	return s
}

// Hold marks k as held
func (s *Snapshot) Hold(k Key) {
	if k < keyCount {
		s.Held[k] = true
	}
}

// Press records a discrete key-down for k
func (s *Snapshot) Press(k Key) {
	s.Pressed = append(s.Pressed, k)
}

// IsHeld reports whether k is currently held
func (s Snapshot) IsHeld(k Key) bool {
	return k < keyCount && s.Held[k]
}

// WasPressed reports whether a key-down for k arrived this tick
func (s Snapshot) WasPressed(k Key) bool {
	for _, p := range s.Pressed {
		if p == k {
			return true
		}
	}
	return false
}

// QuitRequested reports the global quit input
func (s Snapshot) QuitRequested() bool {
	return s.Closed || s.IsHeld(KeyQuit) || s.WasPressed(KeyQuit)
}

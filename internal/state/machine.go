package state

import "fmt"

// State is the discrete lifecycle/motion state of one slider instance.
type State int

const (
	Created State = iota + 1
	Mounted
	Idle
	Moving
	Scrolling
	Dragging
	Destroyed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Mounted:
		return "mounted"
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Scrolling:
		return "scrolling"
	case Dragging:
		return "dragging"
	case Destroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// transitions lists the legal targets for each state. Self transitions are
// always accepted and are not listed.
var transitions = map[State][]State{
	Created:   {Mounted, Destroyed},
	Mounted:   {Idle, Destroyed},
	Idle:      {Moving, Scrolling, Dragging, Destroyed},
	Moving:    {Idle, Destroyed},
	Scrolling: {Idle, Destroyed},
	Dragging:  {Idle, Moving, Destroyed},
	Destroyed: nil,
}

// Allowed reports whether from -> to is a legal transition.
func Allowed(from, to State) bool {
	if from == to {
		return from != Destroyed
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Snapshot is a read-only view of the machine.
type Snapshot struct {
	Current  State
	Previous State
	Rejected int // transitions refused since creation
}

// Machine tracks the state of one slider. It has a single writer (the slider
// that owns it) and is not safe for concurrent use.
type Machine struct {
	current  State
	previous State
	rejected int
	onChange func(from, to State)
	onReject func(from, to State)
}

// New returns a machine in the Created state.
func New() *Machine {
	return &Machine{current: Created, previous: Created}
}

// OnChange installs a hook run after every accepted change of state.
func (m *Machine) OnChange(fn func(from, to State)) {
	m.onChange = fn
}

// OnReject installs a hook run when Set refuses a transition.
func (m *Machine) OnReject(fn func(from, to State)) {
	m.onReject = fn
}

// Set moves the machine to s. Illegal transitions are refused and reported
// through the reject hook; the current state is kept.
func (m *Machine) Set(s State) bool {
	from := m.current
	if !Allowed(from, s) {
		m.rejected++
		if m.onReject != nil {
			m.onReject(from, s)
		}
		return false
	}
	if from == s {
		return true
	}
	m.previous = from
	m.current = s
	if m.onChange != nil {
		m.onChange(from, s)
	}
	return true
}

// Is reports whether the current state is one of states.
func (m *Machine) Is(states ...State) bool {
	for _, s := range states {
		if m.current == s {
			return true
		}
	}
	return false
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// Snapshot returns a copy of the machine's bookkeeping.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{Current: m.current, Previous: m.previous, Rejected: m.rejected}
}

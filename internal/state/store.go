package state

import (
	"sync"
	"time"

	"github.com/five82/liftoff/internal/launch"
)

// FallbackMessage is shown when a fetch fails without a usable message.
const FallbackMessage = "Failed to fetch launch data. Please try again later."

// Phase identifies which screen the UI should present.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseBrowsing
	PhaseDetail
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseBrowsing:
		return "browsing"
	case PhaseDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Snapshot represents the state available to the UI at one instant.
type Snapshot struct {
	Phase       Phase
	Launches    []launch.Launch
	Selected    launch.Launch
	HasSelected bool
	Message     string
	LastUpdated time.Time
	Seq         uint64
}

// HasLastUpdated reports whether a fetch has ever completed successfully
// since the last reset.
func (s Snapshot) HasLastUpdated() bool {
	return !s.LastUpdated.IsZero()
}

// Machine coordinates phase transitions. Fetches run elsewhere; the machine
// only records their outcome.
type Machine struct {
	mu sync.RWMutex

	phase       Phase
	launches    []launch.Launch
	selected    int // index into launches, -1 when none
	message     string
	lastUpdated time.Time
	seq         uint64

	now func() time.Time
}

// NewMachine returns a machine in the Loading phase.
func NewMachine() *Machine {
	return &Machine{phase: PhaseLoading, selected: -1, now: time.Now}
}

// BeginFetch enters Loading, clears any selection and returns the sequence
// number the caller must pass to Complete.
func (m *Machine) BeginFetch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.phase = PhaseLoading
	m.selected = -1
	m.message = ""
	return m.seq
}

// Complete records the outcome of the fetch tagged seq. It reports false when
// the result was discarded because a newer fetch has begun or the machine is
// no longer loading.
func (m *Machine) Complete(seq uint64, launches []launch.Launch, err error) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if seq != m.seq || m.phase != PhaseLoading {
		return false
	}
	if err != nil {
		m.phase = PhaseError
		m.launches = nil
		m.message = errorMessage(err)
		return true
	}
	m.phase = PhaseBrowsing
	m.launches = cloneLaunches(launches)
	m.message = ""
	m.lastUpdated = m.now()
	return true
}

// Select opens the detail view for id. It is a no-op outside Browsing or when
// no launch in the collection has that id.
func (m *Machine) Select(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseBrowsing {
		return false
	}
	for i := range m.launches {
		if m.launches[i].ID == id {
			m.phase = PhaseDetail
			m.selected = i
			return true
		}
	}
	return false
}

// Back returns from Detail to Browsing with the same collection.
func (m *Machine) Back() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseDetail {
		return false
	}
	m.phase = PhaseBrowsing
	m.selected = -1
	return true
}

// Reset drops everything the machine holds and returns to Loading. Pending
// fetches are invalidated.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.phase = PhaseLoading
	m.launches = nil
	m.selected = -1
	m.message = ""
	m.lastUpdated = time.Time{}
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		Phase:       m.phase,
		Message:     m.message,
		LastUpdated: m.lastUpdated,
		Seq:         m.seq,
	}
	// The collection is held through Loading but only visible once browsing.
	if m.phase == PhaseBrowsing || m.phase == PhaseDetail {
		snap.Launches = cloneLaunches(m.launches)
	}
	if m.phase == PhaseDetail && m.selected >= 0 && m.selected < len(m.launches) {
		snap.Selected = cloneLaunch(m.launches[m.selected])
		snap.HasSelected = true
	}
	return snap
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackMessage
}

func cloneLaunches(items []launch.Launch) []launch.Launch {
	if len(items) == 0 {
		return nil
	}
	dup := make([]launch.Launch, len(items))
	for i, l := range items {
		dup[i] = cloneLaunch(l)
	}
	return dup
}

func cloneLaunch(l launch.Launch) launch.Launch {
	l.Launch = l.Launch.Clone()
	return l
}

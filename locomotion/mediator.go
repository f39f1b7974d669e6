package locomotion

import "sync"

// State is the mediator's view of who owns movement
type State uint8

const (
	StateIdle   State = iota // No provider moving
	StateMoving              // Owner holds one or more grants
	StateLocked              // A foreign system holds movement
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Mediator arbitrates exclusive locomotion between providers
// A provider that owns movement can be granted again, once per concurrent gesture; grants are counted
// and ownership returns to idle when the last one ends
type Mediator struct {
	mu     sync.Mutex
	owner  *Provider
	grants int
	lock   string

	granted int64
	denied  int64
}

func NewMediator() *Mediator {
	return &Mediator{}
}

// Provider returns a named gate bound to this mediator
func (m *Mediator) Provider(name string) *Provider {
	return &Provider{name: name, m: m}
}

// Lock hands movement to a foreign owner, such as a teleport or a cutscene
// Fails while a provider is moving
func (m *Mediator) Lock(owner string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.owner != nil || m.lock != "" {
		return false
	}
	m.lock = owner
	return true
}

// Unlock releases a foreign lock taken by owner
func (m *Mediator) Unlock(owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lock == owner {
		m.lock = ""
	}
}

// State reports the current ownership
func (m *Mediator) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.lock != "":
		return StateLocked
	case m.owner != nil:
		return StateMoving
	default:
		return StateIdle
	}
}

// Owner names the current holder, empty when idle
func (m *Mediator) Owner() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lock != "" {
		return m.lock
	}
	if m.owner != nil {
		return m.owner.name
	}
	return ""
}

// Grants is the number of outstanding grants held by the moving provider
func (m *Mediator) Grants() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grants
}

// Stats returns lifetime granted and denied counts
func (m *Mediator) Stats() (granted, denied int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.granted, m.denied
}

func (m *Mediator) tryBegin(p *Provider) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lock != "" || (m.owner != nil && m.owner != p) {
		m.denied++
		return false
	}
	m.owner = p
	m.grants++
	m.granted++
	return true
}

func (m *Mediator) end(p *Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.owner != p || m.grants == 0 {
		return
	}
	m.grants--
	if m.grants == 0 {
		m.owner = nil
	}
}

// Provider is one locomotion source; it satisfies the gesture gate port
type Provider struct {
	name string
	m    *Mediator
}

func (p *Provider) Name() string { return p.name }

// TryBegin requests a grant, false when another owner holds movement
func (p *Provider) TryBegin() bool {
	return p.m.tryBegin(p)
}

// End releases one grant
// End without an outstanding grant, or from a provider that does not own movement, is a no-op
func (p *Provider) End() {
	p.m.end(p)
}

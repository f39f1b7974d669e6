package decal

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Decal is a ground mark left by a slam
type Decal struct {
	Position  mgl64.Vec3
	Rotation  mgl64.Quat
	Remaining time.Duration // Time remaining, unused for permanent decals
	Duration  time.Duration // Total lifetime, zero for permanent
}

// Intensity fades from 1 at spawn to 0 at expiry, permanent decals stay at 1
func (d Decal) Intensity() float64 {
	if d.Duration <= 0 {
		return 1
	}
	if d.Remaining <= 0 {
		return 0
	}
	return float64(d.Remaining) / float64(d.Duration)
}

// Store keeps spawned decals, aging them out and evicting the oldest when full
// Satisfies gesture.DecalSink
type Store struct {
	mu       sync.Mutex
	decals   []Decal
	lifetime time.Duration
	max      int
	spawned  int64
}

// NewStore creates a store; lifetime <= 0 keeps decals forever, max <= 0 is unbounded
func NewStore(lifetime time.Duration, max int) *Store {
	return &Store{lifetime: lifetime, max: max}
}

func (s *Store) Spawn(pos mgl64.Vec3, rot mgl64.Quat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.decals) >= s.max {
		n := copy(s.decals, s.decals[1:])
		s.decals = s.decals[:n]
	}

	s.decals = append(s.decals, Decal{
		Position:  pos,
		Rotation:  rot,
		Remaining: s.lifetime,
		Duration:  s.lifetime,
	})
	s.spawned++
}

// Update ages every decal by elapsed and drops the expired ones, returning how many were dropped
func (s *Store) Update(elapsed time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.decals[:0]
	for _, d := range s.decals {
		if d.Duration > 0 {
			d.Remaining -= elapsed
			if d.Remaining <= 0 {
				continue
			}
		}
		kept = append(kept, d)
	}
	removed := len(s.decals) - len(kept)
	s.decals = kept
	return removed
}

// Active returns a snapshot of live decals, oldest first
func (s *Store) Active() []Decal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Decal, len(s.decals))
	copy(out, s.decals)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.decals)
}

// Spawned counts every decal ever spawned, including evicted and expired ones
func (s *Store) Spawned() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawned
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decals = s.decals[:0]
}

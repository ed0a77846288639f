// Package optimistic implements the client-side reconciliation protocol for
// engagement toggles: a tentative state change is applied immediately, then
// either replaced by the server's authoritative response or rolled back to the
// exact pre-action snapshot.
package optimistic

import (
	"errors"
	"fmt"
	"sync"
)

type State string

const (
	StateIdle       State = "idle"
	StatePending    State = "pending"
	StateReconciled State = "reconciled"
	StateRolledBack State = "rolled_back"
)

var ErrInFlight = errors.New("toggle already in flight")

// EngagementState is the local view of one engagement switch: whether the
// viewer is engaged (liked/favorited) and the visible counter.
type EngagementState struct {
	Active bool
	Count  int64
}

type entry struct {
	state    State
	snapshot EngagementState
	current  EngagementState
}

// Coordinator tracks at most one in-flight toggle per action key. A second
// Begin while a toggle is pending is rejected so the server's last-writer-wins
// semantics never see two concurrent requests for the same logical switch.
type Coordinator struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewCoordinator() *Coordinator {
	return &Coordinator{entries: make(map[string]*entry)}
}

// Key builds the action key for one logical switch.
func Key(userEmail, contentID, action string) string {
	return fmt.Sprintf("%s|%s|%s", userEmail, contentID, action)
}

// Begin applies the tentative toggle to current and moves the switch to
// Pending. The pre-action snapshot is retained for rollback. Counters never
// go below zero.
func (c *Coordinator) Begin(key string, current EngagementState) (EngagementState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && e.state == StatePending {
		return e.current, ErrInFlight
	}

	tentative := EngagementState{Active: !current.Active}
	if tentative.Active {
		tentative.Count = current.Count + 1
	} else {
		tentative.Count = current.Count - 1
		if tentative.Count < 0 {
			tentative.Count = 0
		}
	}

	c.entries[key] = &entry{
		state:    StatePending,
		snapshot: current,
		current:  tentative,
	}
	return tentative, nil
}

// Reconcile replaces the tentative state with the server's authoritative one.
// The optimistic guess is never kept as-is because other viewers may have
// changed the counter concurrently.
func (c *Coordinator) Reconcile(key string, authoritative EngagementState) (EngagementState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.state != StatePending {
		return EngagementState{}, fmt.Errorf("no pending toggle for key %q", key)
	}

	e.state = StateReconciled
	e.current = authoritative
	return e.current, nil
}

// Rollback restores the exact pre-action snapshot. The restore is
// all-or-nothing: both the boolean and the counter come back together.
func (c *Coordinator) Rollback(key string) (EngagementState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.state != StatePending {
		return EngagementState{}, fmt.Errorf("no pending toggle for key %q", key)
	}

	e.state = StateRolledBack
	e.current = e.snapshot
	return e.current, nil
}

// StateOf reports the lifecycle state of a switch; unknown keys are Idle.
func (c *Coordinator) StateOf(key string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return e.state
	}
	return StateIdle
}

// Current returns the locally visible state of a switch.
func (c *Coordinator) Current(key string) (EngagementState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return e.current, true
	}
	return EngagementState{}, false
}

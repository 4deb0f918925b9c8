// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"time"
)

// State tags the variant of a Snapshot.
type State int

const (
	// StatePending means no refresh has completed yet.
	StatePending State = iota
	// StateDisabled means weather is not configured; no request is ever made.
	StateDisabled
	// StateReady means the snapshot carries valid conditions.
	StateReady
	// StateError means the last refresh failed.
	StateError
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDisabled:
		return "disabled"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is the immutable result of a weather refresh. It is either fully populated
// or carries only an error message; the constructors are the only way to build one.
type Snapshot struct {
	state      State
	conditions Conditions
	message    string
	fetchedAt  time.Time
}

// Pending returns the snapshot shown before the first refresh completes.
func Pending() Snapshot {
	return Snapshot{state: StatePending}
}

// Disabled returns the snapshot for an unconfigured weather client.
func Disabled() Snapshot {
	return Snapshot{state: StateDisabled, message: "weather is not configured"}
}

// Ready returns a populated snapshot.
func Ready(cond Conditions, fetchedAt time.Time) Snapshot {
	return Snapshot{state: StateReady, conditions: cond, fetchedAt: fetchedAt}
}

// Failed returns an error snapshot with a short human-readable message.
func Failed(message string, fetchedAt time.Time) Snapshot {
	return Snapshot{state: StateError, message: message, fetchedAt: fetchedAt}
}

func (s Snapshot) State() State {
	return s.state
}

// Conditions returns the conditions and true if the snapshot is ready.
func (s Snapshot) Conditions() (Conditions, bool) {
	if s.state != StateReady {
		return Conditions{}, false
	}
	return s.conditions, true
}

// Message returns the error or disabled message; it is empty for ready snapshots.
func (s Snapshot) Message() string {
	return s.message
}

// FetchedAt returns when the refresh that produced the snapshot finished.
func (s Snapshot) FetchedAt() time.Time {
	return s.fetchedAt
}

// Package history implements the bounded undo/redo snapshot stack for an
// open vault session. Snapshots are deep clones and share no mutable state
// with the live document. The stack is session-local and single-writer: it
// carries no locking and callers must serialize mutation+snapshot pairs.
package history

import "github.com/dmitrijs2005/finkeeper/internal/vault"

// DefaultCapacity bounds how many undo steps are retained.
const DefaultCapacity = 50

// Stack holds undo and redo snapshots for one session. Construct one per
// open vault; it is never persisted and is cleared on close.
type Stack struct {
	capacity int
	undo     []*vault.Vault
	redo     []*vault.Vault
}

// New returns an empty stack. A non-positive capacity falls back to
// DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{capacity: capacity}
}

// Push snapshots the pre-mutation document. It clears the redo stack (a new
// action invalidates redo history) and evicts the oldest snapshot when the
// undo stack is full.
func (s *Stack) Push(v *vault.Vault) {
	if len(s.undo) >= s.capacity {
		copy(s.undo, s.undo[1:])
		s.undo = s.undo[:len(s.undo)-1]
	}
	s.undo = append(s.undo, v.Clone())
	s.redo = s.redo[:0]
}

// Undo returns the most recent snapshot, pushing a clone of current onto the
// redo stack. Returns nil when there is nothing to undo; in that case the
// redo stack is left unchanged.
func (s *Stack) Undo(current *vault.Vault) *vault.Vault {
	if len(s.undo) == 0 {
		return nil
	}
	s.redo = append(s.redo, current.Clone())
	top := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	return top
}

// Redo is symmetric to Undo.
func (s *Stack) Redo(current *vault.Vault) *vault.Vault {
	if len(s.redo) == 0 {
		return nil
	}
	s.undo = append(s.undo, current.Clone())
	top := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	return top
}

// Clear drops all snapshots. Called when a vault is closed.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
}

func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// Depth returns the number of undo snapshots currently held.
func (s *Stack) Depth() int { return len(s.undo) }

package history

import (
	"fmt"
	"testing"

	"github.com/dmitrijs2005/finkeeper/internal/vault"
	"github.com/stretchr/testify/require"
)

func addTx(v *vault.Vault, id int64, amt float64) {
	v.Transactions = append(v.Transactions, vault.Transaction{
		ID: id, AccountID: v.Accounts[0].ID, Desc: fmt.Sprintf("tx-%d", id), Amount: amt,
	})
}

func TestStack_UndoRedoRoundTrip(t *testing.T) {
	s := New(0)
	v := vault.New("USD")

	s.Push(v)
	addTx(v, 1, 100)
	before := v.Clone()

	got := s.Undo(v)
	require.NotNil(t, got)
	require.Empty(t, got.Transactions)

	restored := s.Redo(got)
	require.NotNil(t, restored)
	require.Equal(t, before, restored)
}

func TestStack_NMutationsUndoneAndRedone(t *testing.T) {
	const n = 10

	s := New(0)
	v := vault.New("USD")

	states := make([]*vault.Vault, 0, n+1)
	states = append(states, v.Clone())

	for i := 1; i <= n; i++ {
		s.Push(v)
		addTx(v, int64(i), float64(i))
		states = append(states, v.Clone())
	}

	current := v
	for i := n; i >= 1; i-- {
		current = s.Undo(current)
		require.NotNil(t, current)
		require.Equal(t, states[i-1], current)
	}

	for i := 1; i <= n; i++ {
		current = s.Redo(current)
		require.NotNil(t, current)
		require.Equal(t, states[i], current)
	}
}

func TestStack_UndoOnEmpty(t *testing.T) {
	s := New(0)
	v := vault.New("USD")

	// pre-load the redo stack, then check it survives a failed undo
	s.Push(v)
	current := s.Undo(v)
	require.NotNil(t, current)
	require.True(t, s.CanRedo())

	require.Nil(t, s.Undo(current))
	require.True(t, s.CanRedo())

	restored := s.Redo(current)
	require.NotNil(t, restored)
	require.Nil(t, s.Redo(restored))
}

func TestStack_PushClearsRedo(t *testing.T) {
	s := New(0)
	v := vault.New("USD")

	s.Push(v)
	addTx(v, 1, 1)
	v = s.Undo(v)
	require.True(t, s.CanRedo())

	s.Push(v)
	require.False(t, s.CanRedo())
}

func TestStack_CapacityEviction(t *testing.T) {
	s := New(3)
	v := vault.New("USD")

	for i := 1; i <= 5; i++ {
		s.Push(v)
		addTx(v, int64(i), float64(i))
	}
	require.Equal(t, 3, s.Depth())

	// only the three most recent snapshots survive
	current := v
	var last *vault.Vault
	for i := 0; i < 3; i++ {
		last = s.Undo(current)
		require.NotNil(t, last)
		current = last
	}
	require.Nil(t, s.Undo(current))
	require.Len(t, last.Transactions, 2)
}

func TestStack_SnapshotsAreIsolated(t *testing.T) {
	s := New(0)
	v := vault.New("USD")

	s.Push(v)
	v.Accounts[0].Name = "mutated after push"

	got := s.Undo(v)
	require.Equal(t, vault.DefaultAccountName, got.Accounts[0].Name)
}

func TestStack_Clear(t *testing.T) {
	s := New(0)
	v := vault.New("USD")

	s.Push(v)
	s.Undo(v)
	require.True(t, s.CanRedo())

	s.Clear()
	require.False(t, s.CanUndo())
	require.False(t, s.CanRedo())
	require.Zero(t, s.Depth())
}

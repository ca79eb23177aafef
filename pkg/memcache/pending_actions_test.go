package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingActionsTakeIsSingleUse(t *testing.T) {
	s := NewPendingActions()
	s.Put("tok", PendingAction{Kind: "delete_users", IDs: []string{"a", "b"}}, time.Minute)

	peeked, ok := s.Peek("tok")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, peeked.IDs)

	got, ok := s.Take("tok")
	require.True(t, ok)
	assert.Equal(t, "delete_users", got.Kind)

	_, ok = s.Take("tok")
	assert.False(t, ok)
}

func TestPendingActionsExpire(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewPendingActions()
	s.now = func() time.Time { return now }

	s.Put("tok", PendingAction{Kind: "delete_staff"}, time.Minute)
	now = now.Add(2 * time.Minute)

	_, ok := s.Peek("tok")
	assert.False(t, ok)
	_, ok = s.Take("tok")
	assert.False(t, ok)
}

func TestPendingActionsPutSweepsExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewPendingActions()
	s.now = func() time.Time { return now }

	s.Put("old", PendingAction{}, time.Second)
	now = now.Add(time.Minute)
	s.Put("new", PendingAction{}, time.Minute)

	assert.Len(t, s.data, 1)
}

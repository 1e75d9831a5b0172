package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemory_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))

	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []byte("1"), got)

	now = now.Add(time.Minute)
	_, err = m.Get(ctx, "a")
	require.ErrorIs(t, err, ErrMiss)
	require.True(t, IsMiss(err))

	ok, err := m.Exists(ctx, "b")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, m.Del(ctx, "b", "missing"))
	ok, err = m.Exists(ctx, "b")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, m.Ping(ctx))
}

func TestRemember(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	calls := 0
	load := func() ([]string, error) {
		calls++
		return []string{"Disaster Preparedness"}, nil
	}

	v, err := Remember(ctx, m, Key("lookups", "areas"), time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, []string{"Disaster Preparedness"}, v)

	v, err = Remember(ctx, m, Key("lookups", "areas"), time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, []string{"Disaster Preparedness"}, v)
	require.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err = Remember(ctx, m, Key("other"), time.Minute, func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	ok, _ := m.Exists(ctx, Key("other"))
	require.False(t, ok)
}

func TestKey(t *testing.T) {
	require.Equal(t, "vantage:denylist:abc", Key("denylist", "abc"))
	require.Equal(t, "vantage:user:42", Key("user", 42))
}

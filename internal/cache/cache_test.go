package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1, 0)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c := New[string, string]()

	base := time.Now()
	now = func() time.Time { return base }
	defer func() { now = time.Now }()

	c.Set("k", "v", time.Minute)
	_, ok := c.Get("k")
	require.True(t, ok)

	now = func() time.Time { return base.Add(2 * time.Minute) }
	_, ok = c.Get("k")
	require.False(t, ok)
}

func TestNoTTLNeverExpires(t *testing.T) {
	c := New[string, string]()

	base := time.Now()
	now = func() time.Time { return base }
	defer func() { now = time.Now }()

	c.Set("k", "v", 0)
	now = func() time.Time { return base.Add(24 * time.Hour) }

	_, ok := c.Get("k")
	require.True(t, ok)
}

func TestDeleteAndLen(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	require.Equal(t, 2, c.Len())

	c.Delete("a")
	require.Equal(t, 1, c.Len())
}

func TestPurgeExpired(t *testing.T) {
	c := New[string, int]()

	base := time.Now()
	now = func() time.Time { return base }
	defer func() { now = time.Now }()

	c.Set("stale", 1, time.Second)
	c.Set("fresh", 2, time.Hour)
	c.Set("forever", 3, 0)

	now = func() time.Time { return base.Add(time.Minute) }
	c.PurgeExpired()

	require.Equal(t, 2, c.Len())
	_, ok := c.Get("stale")
	require.False(t, ok)
	_, ok = c.Get("fresh")
	require.True(t, ok)
}

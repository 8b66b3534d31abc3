package bareblog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	l := NewLoginLimiter(2, time.Minute)
	defer l.Stop()

	ip := "203.0.113.10"
	require.True(t, l.Check(ip))
	l.Record(ip)
	require.True(t, l.Check(ip))
	l.Record(ip)
	require.False(t, l.Check(ip))
}

func TestLoginLimiterChecksAreFree(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	defer l.Stop()

	ip := "203.0.113.11"
	for i := 0; i < 10; i++ {
		require.True(t, l.Check(ip))
	}
	l.Record(ip)
	require.False(t, l.Check(ip))
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	defer l.Stop()

	l.Record("203.0.113.12")
	require.False(t, l.Check("203.0.113.12"))
	require.True(t, l.Check("203.0.113.13"))
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	l := NewLoginLimiter(1, 30*time.Millisecond)
	defer l.Stop()

	ip := "203.0.113.14"
	l.Record(ip)
	require.False(t, l.Check(ip))

	time.Sleep(60 * time.Millisecond)
	require.True(t, l.Check(ip))
}

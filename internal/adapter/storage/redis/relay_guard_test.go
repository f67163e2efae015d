package redis

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayGuard_Claim_New(t *testing.T) {
	_, client := newTestClient(t)
	guard := NewRelayGuard(client)

	ok, err := guard.Claim(context.Background(), "relay:handle:0xabc", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "free key should be claimed")
}

func TestRelayGuard_Claim_Replay(t *testing.T) {
	_, client := newTestClient(t)
	guard := NewRelayGuard(client)
	ctx := context.Background()

	ok, err := guard.Claim(ctx, "relay:handle:0xabc", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Claim(ctx, "relay:handle:0xabc", 0)
	require.NoError(t, err)
	assert.False(t, ok, "held key should be rejected")
}

func TestRelayGuard_Claim_Expired(t *testing.T) {
	s, client := newTestClient(t)
	guard := NewRelayGuard(client)
	ctx := context.Background()

	ok, err := guard.Claim(ctx, "tip:busy:0x1:vitalik", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	s.FastForward(6 * time.Minute)

	ok, err = guard.Claim(ctx, "tip:busy:0x1:vitalik", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired claim should be free again")
}

func TestRelayGuard_Claim_NoTTLPersists(t *testing.T) {
	s, client := newTestClient(t)
	guard := NewRelayGuard(client)

	_, err := guard.Claim(context.Background(), "relay:handle:0xdef", 0)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), s.TTL("guard:relay:handle:0xdef"))
}

func TestRelayGuard_Release(t *testing.T) {
	_, client := newTestClient(t)
	guard := NewRelayGuard(client)
	ctx := context.Background()

	_, err := guard.Claim(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.NoError(t, guard.Release(ctx, "k"))
	require.NoError(t, guard.Release(ctx, "k"))

	ok, err := guard.Claim(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRelayGuard_Claim_Concurrent(t *testing.T) {
	_, client := newTestClient(t)
	guard := NewRelayGuard(client)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := guard.Claim(context.Background(), "relay:handle:0xsame", 0)
			if err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load(), "exactly one claimer should win")
}

func TestRelayGuard_ServerDown(t *testing.T) {
	s, client := newTestClient(t)
	guard := NewRelayGuard(client)
	s.Close()

	_, err := guard.Claim(context.Background(), "k", time.Minute)
	assert.Error(t, err)
}

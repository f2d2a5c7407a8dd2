package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/pkg/adapters/redis"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	ports.RunAutomatonStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("test:"))

	require.NoError(t, store.Save(context.Background(), "even", "e\ne\na\ne\n"))

	assert.True(t, mr.Exists("test:desc:even"))
	got, err := mr.Get("test:desc:even")
	require.NoError(t, err)
	assert.Equal(t, "e\ne\na\ne\n", got)
}

func TestRedisStore_ReservedLookingNames(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	for _, name := range []string{"index", "desc:index", "even"} {
		require.NoError(t, store.Save(ctx, name, "e\ne\na\ne\n"), name)
	}

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"desc:index", "even", "index"}, names)

	members, err := mr.ZMembers("dfa:automaton:index")
	require.NoError(t, err)
	assert.Len(t, members, 3)

	require.NoError(t, store.Delete(ctx, "index"))
	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"desc:index", "even"}, names)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "short-lived", "q0\nq0\na\nq0\n"))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"short-lived"}, names)

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	mr.Close()

	_, err := store.Load(context.Background(), "any")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAutomatonNotFound)
}

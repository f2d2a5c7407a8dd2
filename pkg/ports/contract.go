package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/pkg/domain"
)

// RunAutomatonStoreContract runs a suite of tests to verify that an AutomatonStore
// implementation adheres to the defined interface contract.
func RunAutomatonStoreContract(t *testing.T, store AutomatonStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")
	description := "q0\nq0 q1\na b\nq1\nq0 a q1\n"

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, name, description)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, description, loaded)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, "q0\nq0\na\n \n"))
		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "q0\nq0\na\n \n", loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, description))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound, "Load after Delete should return ErrAutomatonNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-b"
		id2 := name + "-a"
		require.NoError(t, store.Save(ctx, id1, description))
		require.NoError(t, store.Save(ctx, id2, description))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsNonDecreasing(t, names)
	})

	t.Run("Names Do Not Collide With Bookkeeping", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "index", description))
		defer func() { _ = store.Delete(ctx, "index") }()

		loaded, err := store.Load(ctx, "index")
		require.NoError(t, err)
		assert.Equal(t, description, loaded)

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "index")
	})
}

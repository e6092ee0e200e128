//go:build unit

package querystore_test

import (
	"net/url"
	"testing"

	"staybook/internal/infra/querystore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReplace(t *testing.T) {
	t.Run("a changed replacement bumps the version", func(t *testing.T) {
		store := querystore.New()

		values := url.Values{}
		values.Set("location", "delhi")

		v := store.Replace(values)
		assert.Equal(t, uint64(1), v)

		values.Set("location", "mumbai")
		v = store.Replace(values)
		assert.Equal(t, uint64(2), v)
	})

	t.Run("an identical replacement is a no-op", func(t *testing.T) {
		store := querystore.New()

		values := url.Values{}
		values.Set("location", "delhi")
		values.Set("guests", "2")
		store.Replace(values)

		// Same content, freshly built map.
		same := url.Values{}
		same.Set("guests", "2")
		same.Set("location", "delhi")

		v := store.Replace(same)
		assert.Equal(t, uint64(1), v)
		assert.Equal(t, uint64(1), store.Version())
	})

	t.Run("snapshot returns an isolated copy", func(t *testing.T) {
		store := querystore.New()
		values := url.Values{}
		values.Set("location", "delhi")
		store.Replace(values)

		snapshot, version := store.Snapshot()
		require.Equal(t, uint64(1), version)

		snapshot.Set("location", "tampered")

		fresh, _ := store.Snapshot()
		assert.Equal(t, "delhi", fresh.Get("location"))
	})

	t.Run("caller mutations after replace do not leak in", func(t *testing.T) {
		store := querystore.New()
		values := url.Values{}
		values.Set("location", "delhi")
		store.Replace(values)

		values.Set("location", "tampered")

		snapshot, _ := store.Snapshot()
		assert.Equal(t, "delhi", snapshot.Get("location"))
	})
}

func TestNewFromValues(t *testing.T) {
	values := url.Values{}
	values.Set("location", "goa")

	store := querystore.NewFromValues(values)

	snapshot, version := store.Snapshot()
	assert.Equal(t, uint64(1), version)
	assert.Equal(t, "goa", snapshot.Get("location"))
}

package services

import (
	"testing"

	"trace_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOfficers(t *testing.T) {
	require.Len(t, DefaultOfficers, 8)
	assert.Equal(t, models.Officer{Name: "SI Karishma Singh", Station: "Lal Bazaar Station", Phone: "9812345670"}, DefaultOfficers[0])
	assert.Equal(t, models.Officer{Name: "SI Naina Mathur", Station: "Jayanagar Station", Phone: "9889012347"}, DefaultOfficers[7])
}

func TestOfficerPoolPick(t *testing.T) {
	t.Run("Uses injected index", func(t *testing.T) {
		pool, err := NewOfficerPool(DefaultOfficers, func(n int) int { return n - 1 })
		require.NoError(t, err)
		assert.Equal(t, DefaultOfficers[7], pool.Pick())
	})

	t.Run("Random pick is always a pool entry", func(t *testing.T) {
		pool, err := NewOfficerPool(DefaultOfficers, nil)
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			assert.True(t, pool.Contains(pool.Pick()))
		}
	})

	t.Run("Empty pool rejected", func(t *testing.T) {
		_, err := NewOfficerPool(nil, nil)
		assert.Error(t, err)
	})
}

func TestOfficerPoolIsolation(t *testing.T) {
	src := []models.Officer{{Name: "A", Station: "S", Phone: "1"}}
	pool, err := NewOfficerPool(src, nil)
	require.NoError(t, err)

	src[0].Name = "changed"

	assert.Equal(t, "A", pool.Pick().Name)
	assert.False(t, pool.Contains(models.Officer{Name: "A", Station: "S", Phone: "2"}))
}

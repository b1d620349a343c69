package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkonpro/estimator/internal/domain/materials"
)

func TestCacheTTL(t *testing.T) {
	now := time.Now()
	c := NewCache(5 * time.Minute)
	c.now = func() time.Time { return now }

	c.Put("Пол:Скрытые", []materials.Material{{ID: "a", Name: "Лага"}})

	got, ok := c.Get("Пол:Скрытые")
	require.True(t, ok)
	assert.Len(t, got, 1)

	now = now.Add(5*time.Minute + time.Second)
	_, ok = c.Get("Пол:Скрытые")
	assert.False(t, ok, "запись должна протухнуть после TTL")
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache(time.Hour)
	c.Put("a:b", []materials.Material{{ID: "1"}})
	c.Put("c:d", []materials.Material{{ID: "2"}})

	c.Invalidate()

	_, ok := c.Get("a:b")
	assert.False(t, ok)
	_, ok = c.Get("c:d")
	assert.False(t, ok)
}

func TestCacheGetReturnsCopy(t *testing.T) {
	c := NewCache(time.Hour)
	c.Put("a:b", []materials.Material{{ID: "1", Name: "Рейка"}})

	first, ok := c.Get("a:b")
	require.True(t, ok)
	first[0].Name = "изменено"

	second, ok := c.Get("a:b")
	require.True(t, ok)
	assert.Equal(t, "Рейка", second[0].Name)
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(time.Hour)
	_, ok := c.Get("нет:такого")
	assert.False(t, ok)
}

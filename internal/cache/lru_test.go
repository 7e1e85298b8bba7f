package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}
	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after update = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a was used recently and should be kept")
	}
	if s := c.Stats(); s.Evictions != 1 || s.Len != 2 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[int, string](4)
	calls := 0
	create := func() string {
		calls++
		return "v"
	}
	c.GetOrCreate(1, create)
	c.GetOrCreate(1, create)

	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate() != 0.5 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestDefaultCapacityAndClear(t *testing.T) {
	c := New[int, int](0)
	if c.Stats().Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", c.Stats().Capacity, DefaultCapacity)
	}
	for i := 0; i < DefaultCapacity+10; i++ {
		c.Set(i, i)
	}
	if c.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want %d", c.Len(), DefaultCapacity)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Set(1, 1)
	if v, ok := c.Get(1); !ok || v != 1 {
		t.Error("cache unusable after Clear")
	}
}

func TestConcurrent(t *testing.T) {
	c := New[string, int](32)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				i := i
				k := strconv.Itoa((g * i) % 50)
				c.GetOrCreate(k, func() int { return i })
			}
		}()
	}
	wg.Wait()
	if c.Len() > 32 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

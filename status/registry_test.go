package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get(KeyFoodEaten)
	b := r.Ints.Get(KeyFoodEaten)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("value = %d, want 3", got)
	}
	if !r.Ints.Has(KeyFoodEaten) || r.Ints.Has(KeyFoodSpawned) {
		t.Error("Has() reported wrong membership")
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k).Set(1)
	}

	var seen []string
	m.Range(func(key string, _ *AtomicFloat) {
		seen = append(seen, key)
	})
	want := []string{"a", "b", "c"}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Range order = %v, want %v", seen, want)
			break
		}
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()

	if got := m.Get("shared").Get(); got != 1600 {
		t.Errorf("shared = %v, want 1600", got)
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestRegistryTotalCount(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeySnakeLength)
	r.Bools.Get(KeyEnginePaused)
	r.Floats.Get(KeyTickSeconds)
	if got := r.TotalCount(); got != 3 {
		t.Errorf("TotalCount() = %d, want 3", got)
	}
}

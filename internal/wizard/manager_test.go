package wizard

import (
	"sync"
	"testing"
	"time"

	"lateral-intake/internal/store"
)

func TestManager_GetOrCreate(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), nil)

	c1 := m.GetOrCreate("sess-1")
	c2 := m.GetOrCreate("sess-1")
	if c1 != c2 {
		t.Error("expected the same container for the same session id")
	}

	c3 := m.GetOrCreate("sess-2")
	if c1 == c3 {
		t.Error("distinct sessions must not share a container")
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
}

func TestManager_GetUnknown(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), nil)
	if _, err := m.Get("nope"); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestManager_ConcurrentGet(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), nil)
	want := m.GetOrCreate("sess-1")

	// Hammer the read path from many goroutines; Get stamps lastUsed on
	// every hit, so this fails under -race if that write is unguarded.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c, err := m.Get("sess-1")
				if err != nil {
					t.Errorf("Get: %v", err)
					return
				}
				if c != want {
					t.Error("Get returned a different container")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestManager_Release(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), nil)
	m.GetOrCreate("sess-1")
	m.Release("sess-1")
	if m.Count() != 0 {
		t.Errorf("Count() after release = %d, want 0", m.Count())
	}
}

func TestManager_CleanupExpired(t *testing.T) {
	m := NewManager(store.NewMemoryStore(), nil)
	m.GetOrCreate("sess-old")
	m.sessions["sess-old"].lastUsed = time.Now().Add(-2 * time.Hour)
	m.GetOrCreate("sess-fresh")

	removed := m.CleanupExpired(time.Hour)
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, err := m.Get("sess-fresh"); err != nil {
		t.Errorf("fresh session should survive cleanup: %v", err)
	}
}

package utils

import (
	"sync"
	"testing"
)

func TestSnowflakeUnique(t *testing.T) {
	node, err := NewSnowflake(1)
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}
	seen := make(map[int64]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := node.NextID()
		if seen[id] {
			t.Fatalf("duplicate id %d at iteration %d", id, i)
		}
		seen[id] = true
	}
}

func TestSnowflakeMonotonic(t *testing.T) {
	node, err := NewSnowflake(2)
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}
	prev := node.NextID()
	for i := 0; i < 1000; i++ {
		id := node.NextID()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestSnowflakeWorkerIDRange(t *testing.T) {
	if _, err := NewSnowflake(-1); err == nil {
		t.Error("expected error for negative worker id")
	}
	if _, err := NewSnowflake(1024); err == nil {
		t.Error("expected error for worker id above range")
	}
}

func TestGenIDConcurrent(t *testing.T) {
	const goroutines, perGoroutine = 8, 500

	var mu sync.Mutex
	seen := make(map[int64]bool, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, GenID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				if seen[id] {
					t.Errorf("duplicate id %d across goroutines", id)
					return
				}
				seen[id] = true
			}
		}()
	}
	wg.Wait()
}

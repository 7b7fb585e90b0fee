package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	var k KeyedMutex
	var inFlight atomic.Int32
	var maxInFlight atomic.Int32

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := k.Lock("Turma A")
			defer unlock()

			current := inFlight.Add(1)
			for {
				prev := maxInFlight.Load()
				if current <= prev || maxInFlight.CompareAndSwap(prev, current) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inFlight.Add(-1)
		}()
	}
	wg.Wait()

	if got := maxInFlight.Load(); got != 1 {
		t.Fatalf("expected at most one holder, got %d", got)
	}
	if k.Len() != 0 {
		t.Fatalf("expected lock table to be drained, got %d entries", k.Len())
	}
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	var k KeyedMutex

	unlockA := k.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := k.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("lock on a different key blocked")
	}
}

func TestKeyedMutex_UnlockIsIdempotent(t *testing.T) {
	var k KeyedMutex

	unlock := k.Lock("a")
	unlock()
	unlock()

	relock := k.Lock("a")
	relock()
	if k.Len() != 0 {
		t.Fatalf("expected empty lock table, got %d", k.Len())
	}
}

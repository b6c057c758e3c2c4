package resilience

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_DoRunsOncePerKey(t *testing.T) {
	t.Parallel()

	var g Group[string]
	var counter atomic.Int32
	var sharedCount atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			<-start
			v, err, shared := g.Do("run-key", func() (string, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil || v != "ok" {
				t.Errorf("unexpected result v=%q err=%v", v, err)
			}
			if shared {
				sharedCount.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := counter.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := sharedCount.Load(); got != workers-1 {
		t.Fatalf("expected %d shared results, got %d", workers-1, got)
	}
}

func TestGroup_DoReleasesKeyAfterPanic(t *testing.T) {
	t.Parallel()

	var g Group[int]
	_, err, _ := g.Do("k", func() (int, error) {
		panic("boom")
	})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected panic surfaced as error, got %v", err)
	}

	v, err, shared := g.Do("k", func() (int, error) { return 7, nil })
	if err != nil || v != 7 || shared {
		t.Fatalf("expected fresh call after panic, got v=%d err=%v shared=%v", v, err, shared)
	}
}

package locker

import (
	"sync"
	"testing"
)

func TestLockSerializesSameKey(t *testing.T) {
	l := New()
	const workers = 8
	const iterations = 200

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				unlock := l.Lock("/data/docs/report.docx")
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	if counter != workers*iterations {
		t.Errorf("counter = %d, want %d", counter, workers*iterations)
	}
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	l := New()
	unlockA := l.Lock("/a")

	done := make(chan struct{})
	go func() {
		unlockB := l.Lock("/b")
		unlockB()
		close(done)
	}()
	<-done

	unlockA()
}

func TestRelockAfterUnlock(t *testing.T) {
	l := New()
	unlock := l.Lock("/a")
	unlock()
	unlock = l.Lock("/a")
	unlock()
}

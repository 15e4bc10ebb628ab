// internal/services/vault/locks_test.go
package vault

import (
	"sync"
	"testing"
)

func TestKeyedMutex_SerializesAndForgets(t *testing.T) {
	k := newKeyedMutex()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("owner")
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			mu.Lock()
			inside--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Fatalf("%d holders at once", maxSeen)
	}
	if n := k.size(); n != 0 {
		t.Fatalf("%d keys still tracked", n)
	}
}

func TestKeyedMutex_DistinctKeysIndependent(t *testing.T) {
	k := newKeyedMutex()
	unlockA := k.Lock("a")
	unlockB := k.Lock("b") // must not block on "a"
	unlockB()
	unlockA()
}

package treap

import (
	"math/rand"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncSetMixedOperationsStorm(t *testing.T) {
	s := NewSync(intLess, WithSeed(0xdeadbeef))

	const keySpace = 128
	goroutines := max(2*runtime.GOMAXPROCS(0), 4)
	const operationsPerGoroutine = 2000

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		seed := int64(0xdeadbeef) + int64(g)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for i := 0; i < operationsPerGoroutine; i++ {
				key := r.Intn(keySpace)
				switch r.Intn(4) {
				case 0:
					s.Add(key)
				case 1:
					s.Remove(key)
				case 2:
					s.Contains(key)
				case 3:
					s.Height()
				}
			}
		}(seed)
	}
	wg.Wait()

	require.NoError(t, s.Validate())
	keys := s.Keys()
	assert.Len(t, keys, s.Len())

	st := s.Stats()
	assert.Equal(t, int64(s.Len()), st.Adds-st.Removes)
}

func TestSyncSetDisjointWriters(t *testing.T) {
	s := NewSync(intLess, WithSeed(1))

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(offset int) {
			defer wg.Done()
			for k := offset; k < workers*perWorker; k += workers {
				if !s.Add(k) {
					t.Errorf("add %d reported duplicate", k)
				}
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, s.Len())
	require.NoError(t, s.Validate())

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(offset int) {
			defer wg.Done()
			for k := offset; k < workers*perWorker; k += workers {
				if !s.Remove(k) {
					t.Errorf("remove %d reported absent", k)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Height())
}

func TestSyncSetReadersSeeConsistentTree(t *testing.T) {
	s := NewSync(intLess, WithSeed(2))
	const totalKeys = 1024

	stop := make(chan struct{})
	errCh := make(chan error, 1)
	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if err := s.Validate(); err != nil {
				select {
				case errCh <- err:
				default:
				}
				return
			}
		}
	}()

	for k := 0; k < totalKeys; k++ {
		s.Add(k)
	}
	for k := 0; k < totalKeys; k += 2 {
		s.Remove(k)
	}
	close(stop)
	readers.Wait()

	select {
	case err := <-errCh:
		t.Fatal(err)
	default:
	}
	assert.Equal(t, totalKeys/2, s.Len())
}

func TestSyncSetDo(t *testing.T) {
	s := NewSync(intLess, WithSeed(3))
	s.Add(1)
	s.Add(2)

	var sum int
	s.Do(func(set *Set[int]) {
		for k := range set.All() {
			sum += k
		}
		set.Add(sum)
	})
	assert.Equal(t, 3, sum)
	assert.True(t, s.Contains(3))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Keys())
}

package kv

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestPutGetOverwrite(t *testing.T) {
	s := New[int]()
	id := uuid.New()

	_, ok := s.Get(id)
	require.False(t, ok)

	s.Put(id, 1)
	v, ok := s.Get(id)
	require.True(t, ok)
	require.Equal(t, 1, v)

	s.Put(id, 2)
	v, _ = s.Get(id)
	require.Equal(t, 2, v)
	require.Equal(t, 1, s.Len())
}

func TestUpdateIsAtomicUnderConcurrency(t *testing.T) {
	const (
		workers    = 8
		iterations = 500
	)

	s := New[int]()
	id := uuid.New()
	s.Put(id, 0)

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				s.Update(id, func(v *int) { *v++ })
			}
		}()
	}
	wg.Wait()

	v, ok := s.Get(id)
	require.True(t, ok)
	require.Equal(t, workers*iterations, v)
}

func TestUpdateUnknownKeyReturnsFalse(t *testing.T) {
	s := New[int]()
	require.False(t, s.Update(uuid.New(), func(v *int) { *v = 42 }))
}

func TestRangeVisitsEveryEntry(t *testing.T) {
	s := New[int]()
	want := map[uuid.UUID]int{}
	for i := 0; i < 100; i++ {
		id := uuid.New()
		want[id] = i
		s.Put(id, i)
	}

	seen := atomic.NewInt32(0)
	s.Range(func(id uuid.UUID, v int) bool {
		require.Equal(t, want[id], v)
		seen.Inc()
		return true
	})
	require.Equal(t, int32(100), seen.Load())
}

func TestRangeStopsWhenFnReturnsFalse(t *testing.T) {
	s := New[int]()
	for i := 0; i < 10; i++ {
		s.Put(uuid.New(), i)
	}

	visited := 0
	s.Range(func(uuid.UUID, int) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited)
}

// Package kv implements a sharded concurrent map keyed by UUID. Entity
// registries use it to get per-key exclusive updates without a global lock.
package kv

import (
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
)

const shardCount = 16

type shard[V any] struct {
	mtx   sync.RWMutex
	items map[uuid.UUID]V
}

// Store is a fixed-shard hash map. Single-key operations are atomic,
// Range iterates a live snapshot that need not be point-in-time consistent
// across keys.
type Store[V any] struct {
	shards [shardCount]*shard[V]
}

func New[V any]() *Store[V] {
	s := &Store[V]{}
	for i := range s.shards {
		s.shards[i] = &shard[V]{items: map[uuid.UUID]V{}}
	}
	return s
}

func (s *Store[V]) shardFor(id uuid.UUID) *shard[V] {
	h := fnv.New32a()
	_, _ = h.Write(id[:])
	return s.shards[h.Sum32()%shardCount]
}

// Put inserts or overwrites the entry for id.
func (s *Store[V]) Put(id uuid.UUID, v V) {
	sh := s.shardFor(id)
	sh.mtx.Lock()
	sh.items[id] = v
	sh.mtx.Unlock()
}

// Get returns a copy of the entry for id.
func (s *Store[V]) Get(id uuid.UUID) (V, bool) {
	sh := s.shardFor(id)
	sh.mtx.RLock()
	v, ok := sh.items[id]
	sh.mtx.RUnlock()
	return v, ok
}

// Update applies fn to the entry for id while holding the shard lock
// exclusively. fn must not block. Returns false if the id is unknown.
func (s *Store[V]) Update(id uuid.UUID, fn func(*V)) bool {
	sh := s.shardFor(id)
	sh.mtx.Lock()
	defer sh.mtx.Unlock()

	v, ok := sh.items[id]
	if !ok {
		return false
	}
	fn(&v)
	sh.items[id] = v
	return true
}

// Range calls fn for every entry until fn returns false. Entries are passed
// by value, mutating them does not affect the store.
func (s *Store[V]) Range(fn func(id uuid.UUID, v V) bool) {
	for _, sh := range s.shards {
		sh.mtx.RLock()
		for id, v := range sh.items {
			if !fn(id, v) {
				sh.mtx.RUnlock()
				return
			}
		}
		sh.mtx.RUnlock()
	}
}

// Len returns the total number of entries across all shards.
func (s *Store[V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mtx.RLock()
		n += len(sh.items)
		sh.mtx.RUnlock()
	}
	return n
}

// Package memstore provides in-memory repositories used when no database is configured.
//
// Records are spread over a fixed number of shards keyed by owner so that unrelated
// identities do not contend on one lock. Aggregates are kept with atomics.
package memstore

import (
	"hash/fnv"
	"sync"
)

const shardCount = 32

type shard[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

type shards[T any] [shardCount]*shard[T]

func newShards[T any]() *shards[T] {
	var s shards[T]
	for i := range s {
		s[i] = &shard[T]{items: make(map[string]T)}
	}

	return &s
}

func (s *shards[T]) get(key string) *shard[T] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return s[h.Sum32()%shardCount]
}

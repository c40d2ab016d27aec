// Copyright 2024 Logdeck Technologies <dev@logdeck.io>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package querycache keeps the client-side result cache consistent. It maps
// canonical query keys to entries with an explicit lifecycle, coalesces
// concurrent fetches for identical keys, applies completions in order, and
// fires the declarative invalidation cascade after mutations.
package querycache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/logdeck/logdeck-cli/filter"
	"github.com/logdeck/logdeck-cli/helper"
)

// Status is the lifecycle state of a cache entry.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusFetching Status = "fetching"
	StatusFresh    Status = "fresh"
	StatusStale    Status = "stale"
	StatusErrored  Status = "errored"
)

// MetadataFreshFor is how long service metadata is served without
// revalidation. Metadata only changes when sources or severity levels
// change, so it refreshes on its own timer or on explicit invalidation.
const MetadataFreshFor = 10 * time.Minute

// Entry is the cached state of one query key.
type Entry struct {
	Data      interface{}
	Status    Status
	Err       error
	FetchedAt time.Time
}

// FetchFunc loads the result for a key from the domain service.
type FetchFunc func(ctx context.Context) (interface{}, error)

type entryState struct {
	Entry

	// issuedSeq and appliedSeq order completions per key: a completion
	// carrying a sequence older than the last applied one is discarded so
	// a slow response can never overwrite a fresher result.
	issuedSeq  uint64
	appliedSeq uint64

	readers int
	fetcher FetchFunc
}

type fetchConfig struct {
	keepPreviousData bool
}

// FetchOption adjusts a single fetch.
type FetchOption func(*fetchConfig)

// KeepPreviousData retains the last good data while revalidating and after
// a failed refetch, so paginating or filtering does not blank the view.
func KeepPreviousData() FetchOption {
	return func(cfg *fetchConfig) {
		cfg.keepPreviousData = true
	}
}

// Store is the key→entry cache. It is constructed once per session and
// passed to every consumer; there is no ambient global store. All entry
// mutation goes through Store methods, guarded by a single mutex.
type Store struct {
	mu      sync.RWMutex
	entries map[filter.Key]*entryState
	flight  singleflight.Group

	// freshFor holds per-family freshness windows; zero means fresh until
	// explicitly invalidated.
	freshFor map[string]time.Duration

	logger *zap.SugaredLogger
}

// NewStore creates an empty store. A nil logger falls back to the package
// logger.
func NewStore(logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = helper.GetSugarLogger([]string{"querycache"})
	}

	return &Store{
		entries: make(map[filter.Key]*entryState),
		freshFor: map[string]time.Duration{
			filter.FamilyMetadata: MetadataFreshFor,
		},
		logger: logger,
	}
}

// Get returns the current entry for key without side effects. An unknown
// key reads as an idle entry.
func (s *Store) Get(key filter.Key) Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.entries[key]
	if !ok {
		return Entry{Status: StatusIdle}
	}

	entry := state.Entry
	if entry.Status == StatusFresh && s.expiredLocked(key, state) {
		entry.Status = StatusStale
	}
	return entry
}

// Contains reports whether key has a cache entry at all.
func (s *Store) Contains(key filter.Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[key]
	return ok
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Read returns the current entry synchronously and, when the entry is idle
// or stale with no fetch in flight, schedules a background fetch through fn.
func (s *Store) Read(key filter.Key, fn FetchFunc, opts ...FetchOption) Entry {
	s.mu.Lock()
	state := s.stateLocked(key)
	if fn != nil {
		state.fetcher = fn
	}

	entry := state.Entry
	expired := entry.Status == StatusFresh && s.expiredLocked(key, state)
	if expired {
		entry.Status = StatusStale
	}
	needsFetch := entry.Status == StatusIdle || entry.Status == StatusStale
	s.mu.Unlock()

	if needsFetch && fn != nil {
		go func() {
			_, _ = s.Fetch(context.Background(), key, fn, opts...)
		}()
	}

	return entry
}

// Retain registers an active reader of key. Invalidation refetches keys
// with active readers instead of leaving them stale until the next Read.
func (s *Store) Retain(key filter.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stateLocked(key).readers++
}

// Release drops one active reader of key.
func (s *Store) Release(key filter.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.entries[key]; ok && state.readers > 0 {
		state.readers--
	}
}

// Fetch loads the result for key through fn. Concurrent fetches for an
// identical key are coalesced onto one in-flight call; every caller
// receives the shared result. Completions are applied in completion order.
func (s *Store) Fetch(ctx context.Context, key filter.Key, fn FetchFunc, opts ...FetchOption) (interface{}, error) {
	cfg := fetchConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	s.mu.Lock()
	state := s.stateLocked(key)
	state.fetcher = fn
	state.issuedSeq++
	seq := state.issuedSeq
	state.Status = StatusFetching
	if !cfg.keepPreviousData {
		// The previous error is no longer meaningful once a new attempt
		// starts; the data stays visible until the attempt resolves.
		state.Err = nil
	}
	s.mu.Unlock()

	data, err, _ := s.flight.Do(key.String(), func() (interface{}, error) {
		return fn(ctx)
	})

	s.apply(key, seq, data, err, cfg.keepPreviousData)

	if err != nil {
		return nil, err
	}
	return data, nil
}

// apply lands a completed fetch on the entry, discarding completions that
// arrive after a fresher one has already been applied.
func (s *Store) apply(key filter.Key, seq uint64, data interface{}, err error, keepPreviousData bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.stateLocked(key)
	if seq < state.appliedSeq {
		s.logger.Debugw("discarding stale completion", "key", key.String(), "seq", seq, "applied", state.appliedSeq)
		return
	}
	state.appliedSeq = seq

	if err != nil {
		state.Status = StatusErrored
		state.Err = err
		if !keepPreviousData {
			state.Data = nil
		}
		return
	}

	state.Status = StatusFresh
	state.Err = nil
	state.Data = data
	state.FetchedAt = time.Now()
}

// Invalidate marks every entry of the given key family as stale and
// refetches the ones with active readers. In-flight coalescing for the
// family is forgotten so the refetch issues a genuinely new request.
func (s *Store) Invalidate(family string) {
	type refetch struct {
		key filter.Key
		fn  FetchFunc
	}

	s.mu.Lock()
	var refetches []refetch
	for key, state := range s.entries {
		if key.Family != family {
			continue
		}

		state.Status = StatusStale
		s.flight.Forget(key.String())
		if state.readers > 0 && state.fetcher != nil {
			refetches = append(refetches, refetch{key: key, fn: state.fetcher})
		}
	}
	s.mu.Unlock()

	for _, r := range refetches {
		r := r
		go func() {
			_, _ = s.Fetch(context.Background(), r.key, r.fn, KeepPreviousData())
		}()
	}
}

// Evict removes the entry for key entirely.
func (s *Store) Evict(key filter.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	s.flight.Forget(key.String())
}

func (s *Store) stateLocked(key filter.Key) *entryState {
	state, ok := s.entries[key]
	if !ok {
		state = &entryState{Entry: Entry{Status: StatusIdle}}
		s.entries[key] = state
	}
	return state
}

func (s *Store) expiredLocked(key filter.Key, state *entryState) bool {
	window := s.freshFor[key.Family]
	if window == 0 || state.FetchedAt.IsZero() {
		return false
	}
	return time.Since(state.FetchedAt) > window
}

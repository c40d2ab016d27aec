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

// Package service maps dashboard operations onto the REST surface of the
// log service. Reads go through the query cache, mutations go straight to
// the transport and fire the invalidation cascade on success.
package service

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/logdeck/logdeck-cli/api"
	"github.com/logdeck/logdeck-cli/filter"
	"github.com/logdeck/logdeck-cli/helper"
	"github.com/logdeck/logdeck-cli/querycache"
	"github.com/logdeck/logdeck-cli/transport"
)

const (
	logsPath        = "/logs"
	logPathFmt      = "/logs/%d"
	aggregationPath = "/logs/aggregation"
	chartDataPath   = "/logs/chart-data"
	metadataPath    = "/logs/metadata"
	exportCSVPath   = "/logs/export/csv"
)

// LogService is the domain service for the log resource family.
type LogService struct {
	transport *transport.Client
	cache     *querycache.Store
	logger    *zap.SugaredLogger
}

// NewLogService wires a service to its transport and cache store. A nil
// logger falls back to the package logger.
func NewLogService(t *transport.Client, cache *querycache.Store, logger *zap.SugaredLogger) *LogService {
	if logger == nil {
		logger = helper.GetSugarLogger([]string{"service"})
	}

	return &LogService{transport: t, cache: cache, logger: logger}
}

// Cache exposes the store backing this service, for consumers that drive
// Read/Retain/Release directly.
func (s *LogService) Cache() *querycache.Store {
	return s.cache
}

// cached serves a fresh entry from the store and otherwise fetches through
// fn, coalescing with any identical in-flight request.
func (s *LogService) cached(ctx context.Context, key filter.Key, fn querycache.FetchFunc, opts ...querycache.FetchOption) (interface{}, error) {
	if entry := s.cache.Get(key); entry.Status == querycache.StatusFresh && entry.Data != nil {
		return entry.Data, nil
	}
	return s.cache.Fetch(ctx, key, fn, opts...)
}

// List returns one page of logs for the given filter state.
func (s *LogService) List(ctx context.Context, filters filter.Set, opts ...querycache.FetchOption) (*api.LogListResponse, error) {
	params, key := filters.Canonicalize()

	data, err := s.cached(ctx, key, func(ctx context.Context) (interface{}, error) {
		result := &api.LogListResponse{}
		_, err := s.transport.Request(ctx, http.MethodGet, logsPath, transport.Options{
			Params: params,
			Result: result,
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return data.(*api.LogListResponse), nil
}

// ReadList is the non-blocking variant of List: it returns the current
// cache entry immediately and lets the store revalidate in the background.
func (s *LogService) ReadList(filters filter.Set, opts ...querycache.FetchOption) querycache.Entry {
	params, key := filters.Canonicalize()

	return s.cache.Read(key, func(ctx context.Context) (interface{}, error) {
		result := &api.LogListResponse{}
		_, err := s.transport.Request(ctx, http.MethodGet, logsPath, transport.Options{
			Params: params,
			Result: result,
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}, opts...)
}

// Get returns a single log entry by id.
func (s *LogService) Get(ctx context.Context, id int) (*api.LogEntry, error) {
	data, err := s.cached(ctx, filter.LogKey(id), func(ctx context.Context) (interface{}, error) {
		entry := &api.LogEntry{}
		_, err := s.transport.Request(ctx, http.MethodGet, fmt.Sprintf(logPathFmt, id), transport.Options{
			Result: entry,
		})
		if err != nil {
			return nil, err
		}
		return entry, nil
	})
	if err != nil {
		return nil, err
	}

	return data.(*api.LogEntry), nil
}

// Create submits a new log entry and invalidates every key family a create
// can affect.
func (s *LogService) Create(ctx context.Context, req api.CreateLogRequest) (*api.LogEntry, error) {
	created := &api.LogEntry{}
	_, err := s.transport.Request(ctx, http.MethodPost, logsPath, transport.Options{
		Body:   req,
		Result: created,
	})
	if err != nil {
		return nil, err
	}

	s.cache.ApplyCascade(querycache.MutationCreateLog, created.Id)
	s.logger.Debugw("log created", "id", created.Id, "source", created.Source)
	return created, nil
}

// Update applies a partial update to a log entry and invalidates the
// affected key families, including the entry's own snapshot.
func (s *LogService) Update(ctx context.Context, id int, req api.UpdateLogRequest) (*api.LogEntry, error) {
	updated := &api.LogEntry{}
	_, err := s.transport.Request(ctx, http.MethodPut, fmt.Sprintf(logPathFmt, id), transport.Options{
		Body:   req,
		Result: updated,
	})
	if err != nil {
		return nil, err
	}

	s.cache.ApplyCascade(querycache.MutationUpdateLog, id)
	s.logger.Debugw("log updated", "id", id)
	return updated, nil
}

// Delete removes a log entry. The entry's cached snapshot is evicted
// outright, and the listing and analytics families are marked stale.
func (s *LogService) Delete(ctx context.Context, id int) (*api.DeleteResponse, error) {
	deleted := &api.DeleteResponse{}
	_, err := s.transport.Request(ctx, http.MethodDelete, fmt.Sprintf(logPathFmt, id), transport.Options{
		Result: deleted,
	})
	if err != nil {
		return nil, err
	}

	s.cache.ApplyCascade(querycache.MutationDeleteLog, id)
	s.logger.Debugw("log deleted", "id", id)
	return deleted, nil
}

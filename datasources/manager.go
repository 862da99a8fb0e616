/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package datasources keeps a catalog of named CSV sources. Sources are
// registered up front and loaded lazily, once, on first use.
package datasources

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/colframe/core/csvimport"
	"github.com/google/colframe/core/errs"
	"github.com/google/colframe/core/tables"
)

// DataSource describes where a table comes from.
type DataSource struct {
	Name    string
	Path    string
	Options csvimport.ImportOptions
}

// Manager handles loading and caching of data sources.
type Manager struct {
	mu sync.RWMutex

	// Source metadata indexed by name
	sources map[string]*DataSource

	// Cached tables indexed by source name - populated lazily
	tables map[string]*tables.Table

	// Base directory for resolving relative paths
	baseDir string
}

// NewManager creates a new data source manager.
func NewManager() *Manager {
	return &Manager{
		sources: make(map[string]*DataSource),
		tables:  make(map[string]*tables.Table),
	}
}

// SetBaseDir sets the base directory for resolving relative source paths.
func (m *Manager) SetBaseDir(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseDir = dir
}

// AddSource registers a CSV source. Re-registering a name replaces the
// source and drops any cached table for it.
func (m *Manager) AddSource(source DataSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addSourceLocked(source)
}

func (m *Manager) addSourceLocked(source DataSource) {
	if source.Options.TableName == "" {
		source.Options.TableName = source.Name
	}
	m.sources[source.Name] = &source
	delete(m.tables, source.Name)
}

// AddFile registers path under the file's base name, without extension,
// and returns that name. A name already used by another path or table
// gets a "_2", "_3", ... suffix. Adding the same path again replaces its
// source. With no options the defaults are used.
func (m *Manager) AddFile(path string, options ...csvimport.ImportOptions) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	opts := csvimport.DefaultOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	name := stem
	for n := 2; m.nameTakenLocked(name, path); n++ {
		name = stem + "_" + strconv.Itoa(n)
	}
	m.addSourceLocked(DataSource{Name: name, Path: path, Options: opts})
	return name
}

// nameTakenLocked reports whether name belongs to a table or to a source
// reading some other path.
func (m *Manager) nameTakenLocked(name, path string) bool {
	if src, ok := m.sources[name]; ok {
		return src.Path != path
	}
	_, ok := m.tables[name]
	return ok
}

// RegisterTable adds an already built table under its name.
func (m *Manager) RegisterTable(t *tables.Table) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[t.Name()] = t
}

// GetSourceNames returns every registered source and table name, sorted.
func (m *Manager) GetSourceNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool, len(m.sources)+len(m.tables))
	for name := range m.sources {
		seen[name] = true
	}
	for name := range m.tables {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLoaded reports whether the named table is cached.
func (m *Manager) IsLoaded(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.tables[name]
	return ok
}

// LoadData returns the named table, importing it on first use.
// Unknown names fail with errs.ErrNotFound.
func (m *Manager) LoadData(name string) (*tables.Table, error) {
	// Check cache first (with read lock)
	m.mu.RLock()
	if table, ok := m.tables[name]; ok {
		m.mu.RUnlock()
		return table, nil
	}
	source, ok := m.sources[name]
	baseDir := m.baseDir
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: source %q", errs.ErrNotFound, name)
	}

	path := source.Path
	if baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	table, err := csvimport.ImportFromFile(path, source.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to load source %q: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another caller may have loaded it meanwhile; keep the first.
	if cached, ok := m.tables[name]; ok {
		return cached, nil
	}
	m.tables[name] = table
	return table, nil
}

// LoadAll loads every registered source in name order.
func (m *Manager) LoadAll() ([]*tables.Table, error) {
	names := m.GetSourceNames()
	out := make([]*tables.Table, 0, len(names))
	for _, name := range names {
		t, err := m.LoadData(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// InvalidateCache removes a source from the cache, forcing reload on next access.
func (m *Manager) InvalidateCache(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables, name)
}

// Package testutils provides test doubles shared by the VAROS packages.
package testutils

import (
	"context"
	"fmt"
	"sync"
)

// MockFilesystem implements varostypes.Filesystem over an in-memory tree.
type MockFilesystem struct {
	mu      sync.RWMutex
	files   map[string]bool
	dirs    map[string][]string
	listErr map[string]error
	calls   []string
}

// NewMockFilesystem creates an empty mock filesystem.
func NewMockFilesystem() *MockFilesystem {
	return &MockFilesystem{
		files:   make(map[string]bool),
		dirs:    make(map[string][]string),
		listErr: make(map[string]error),
	}
}

// AddDir registers a directory and the entry paths ListDir should return, in order.
func (m *MockFilesystem) AddDir(path string, entries ...string) *MockFilesystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = entries
	return m
}

// AddFile registers a regular file.
func (m *MockFilesystem) AddFile(path string) *MockFilesystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = true
	return m
}

// SetListError makes ListDir fail for path even if it exists.
func (m *MockFilesystem) SetListError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr[path] = err
}

// Calls returns the operations performed so far, formatted as "op path".
func (m *MockFilesystem) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// Exists implements varostypes.Filesystem.
func (m *MockFilesystem) Exists(_ context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "exists "+path)
	_, isDir := m.dirs[path]
	return isDir || m.files[path], nil
}

// ListDir implements varostypes.Filesystem.
func (m *MockFilesystem) ListDir(_ context.Context, path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "list "+path)
	if err, ok := m.listErr[path]; ok {
		return nil, err
	}
	entries, ok := m.dirs[path]
	if !ok {
		return nil, fmt.Errorf("no such directory: %s", path)
	}
	out := make([]string, len(entries))
	copy(out, entries)
	return out, nil
}

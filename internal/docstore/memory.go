// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Memory keeps one collection in process. Documents are listed in insertion
// order. It backs tests and STORE_DRIVER=memory.
type Memory struct {
	name string

	mu    sync.RWMutex
	docs  map[string][]byte
	order []string
}

// NewMemory returns an empty in-process collection.
func NewMemory(name string) *Memory {
	return &Memory{name: name, docs: make(map[string][]byte)}
}

func (m *Memory) Name() string { return m.name }

func (m *Memory) Get(_ context.Context, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	body, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	return slices.Clone(body), nil
}

func (m *Memory) List(_ context.Context) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bodies := make([][]byte, 0, len(m.order))
	for _, id := range m.order {
		bodies = append(bodies, slices.Clone(m.docs[id]))
	}
	return bodies, nil
}

func (m *Memory) ListBy(ctx context.Context, field, value string) ([][]byte, error) {
	bodies, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterBodies(bodies, field, value)
}

func (m *Memory) Insert(_ context.Context, id string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; exists {
		return fmt.Errorf("docstore: %s/%s already exists", m.name, id)
	}

	m.docs[id] = slices.Clone(body)
	m.order = append(m.order, id)
	return nil
}

func (m *Memory) Replace(_ context.Context, id string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; exists {
		m.docs[id] = slices.Clone(body)
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; !exists {
		return nil
	}

	delete(m.docs, id)
	m.order = slices.DeleteFunc(m.order, func(existing string) bool { return existing == id })
	return nil
}

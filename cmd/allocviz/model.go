package main

import (
	"math/rand"

	"github.com/cshenton/block-allocator/arena"
	"github.com/cshenton/block-allocator/cmd/allocviz/logger"
	"github.com/cshenton/block-allocator/suballoc"
)

// Model is allocviz's bubbletea model: an allocator, the arena it carves
// offsets out of, and the set of allocations currently outstanding.
type Model struct {
	a   *suballoc.Allocator
	ar  *arena.Arena
	rng *rand.Rand

	live    []suballoc.Allocation
	lastMsg string
	err     error

	width, height int
}

// NewModel builds a model managing an arena of the given size.
func NewModel(size uint32, seed int64) (Model, error) {
	ar, err := arena.New(size)
	if err != nil {
		return Model{}, err
	}
	a, err := suballoc.New(size, nil)
	if err != nil {
		ar.Close()
		return Model{}, err
	}
	return Model{a: a, ar: ar, rng: rand.New(rand.NewSource(seed))}, nil
}

// Close releases the model's allocator-backed resources.
func (m Model) Close() error {
	m.a.Close()
	return m.ar.Close()
}

func (m *Model) allocRandom() {
	size := uint32(m.rng.Intn(int(m.ar.Len())/8)) + 1
	alloc, err := m.a.Alloc(size)
	if err != nil {
		m.lastMsg = "alloc failed: " + err.Error()
		logger.Warn("alloc failed", "size", size, "error", err)
		return
	}
	m.live = append(m.live, alloc)
	m.lastMsg = "allocated"
	logger.Debug("alloc", "offset", alloc.Offset, "size", alloc.Size)
}

func (m *Model) freeRandom() {
	if len(m.live) == 0 {
		m.lastMsg = "nothing to free"
		return
	}
	i := m.rng.Intn(len(m.live))
	alloc := m.live[i]
	m.live = append(m.live[:i], m.live[i+1:]...)
	if err := m.a.Free(alloc); err != nil {
		m.lastMsg = "free failed: " + err.Error()
		logger.Warn("free failed", "handle", alloc.Handle, "error", err)
		return
	}
	m.lastMsg = "freed"
	logger.Debug("free", "offset", alloc.Offset, "size", alloc.Size)
}

func (m *Model) reset() {
	for _, alloc := range m.live {
		_ = m.a.Free(alloc)
	}
	m.live = nil
	m.lastMsg = "reset"
}

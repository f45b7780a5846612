// Package memory simulates a paged main memory: a fixed table of frames
// handed out first-fit, with FIFO replacement when the table is full.
package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	ErrInsufficientMemory = errors.New("insufficient memory")
	ErrInvalidSize        = errors.New("invalid process size")
	ErrInvalidProcess     = errors.New("invalid process id")
	ErrAlreadyLoaded      = errors.New("process already loaded")
	ErrNotLoaded          = errors.New("process not loaded")
)

const freeFrame = ""

type State struct {
	// Frames holds the owner of every frame, "" when free.
	Frames     []string
	PageTables map[string][]int
}

type Manager struct {
	mu         sync.Mutex
	pageSize   int
	frames     []string
	pageTables map[string][]int
	// resident process ids, oldest load first
	loadOrder []string
}

func NewManager(frameCount int, pageSize int) *Manager {
	if frameCount < 0 {
		frameCount = 0
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Manager{
		pageSize:   pageSize,
		frames:     make([]string, frameCount),
		pageTables: make(map[string][]int),
		loadOrder:  make([]string, 0),
	}
}

// PagesFor returns how many pages a process of the given size occupies.
func (m *Manager) PagesFor(size int) int {
	return (size + m.pageSize - 1) / m.pageSize
}

// Load places a process in the lowest numbered free frames. Nothing is
// allocated when there are not enough free frames.
func (m *Manager) Load(processId string, size int) ([]int, error) {
	if err := m.validate(processId, size); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pageTables[processId]; ok {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyLoaded, processId)
	}

	pageCount := m.PagesFor(size)
	if free := m.freeFrameCount(); free < pageCount {
		slog.Warn("not enough free frames", "pid", processId, "pages", pageCount, "free", free)
		return nil, fmt.Errorf("%w: process %s needs %d frames, %d free", ErrInsufficientMemory, processId, pageCount, free)
	}

	return m.allocate(processId, pageCount), nil
}

// Replace loads a process, evicting resident processes in the order they
// were loaded until enough frames are free. The evicted ids are returned.
func (m *Manager) Replace(processId string, size int) ([]int, []string, error) {
	if err := m.validate(processId, size); err != nil {
		return nil, nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pageTables[processId]; ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrAlreadyLoaded, processId)
	}

	pageCount := m.PagesFor(size)
	if pageCount > len(m.frames) {
		return nil, nil, fmt.Errorf("%w: process %s needs %d frames, memory has %d",
			ErrInsufficientMemory, processId, pageCount, len(m.frames))
	}

	evicted := make([]string, 0)
	for m.freeFrameCount() < pageCount {
		victim := m.loadOrder[0]
		m.release(victim)
		evicted = append(evicted, victim)
		slog.Debug("page replacement", "victim", victim, "pid", processId)
	}

	return m.allocate(processId, pageCount), evicted, nil
}

// Unload frees every frame held by a process.
func (m *Manager) Unload(processId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pageTables[processId]; !ok {
		return fmt.Errorf("%w: %s", ErrNotLoaded, processId)
	}
	m.release(processId)
	return nil
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	frames := make([]string, len(m.frames))
	copy(frames, m.frames)
	pageTables := make(map[string][]int, len(m.pageTables))
	for id, pages := range m.pageTables {
		pageTables[id] = append([]int(nil), pages...)
	}
	return State{Frames: frames, PageTables: pageTables}
}

func (m *Manager) validate(processId string, size int) error {
	if processId == freeFrame {
		return fmt.Errorf("%w: empty id", ErrInvalidProcess)
	}
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return nil
}

func (m *Manager) freeFrameCount() int {
	count := 0
	for _, owner := range m.frames {
		if owner == freeFrame {
			count++
		}
	}
	return count
}

// allocate must be called with mu held and enough free frames.
func (m *Manager) allocate(processId string, pageCount int) []int {
	assignedFrames := make([]int, 0, pageCount)
	for i := range m.frames {
		if len(assignedFrames) == pageCount {
			break
		}
		if m.frames[i] == freeFrame {
			m.frames[i] = processId
			assignedFrames = append(assignedFrames, i)
		}
	}
	m.pageTables[processId] = assignedFrames
	m.loadOrder = append(m.loadOrder, processId)

	slog.Debug("process loaded", "pid", processId, "frames", assignedFrames)
	return append([]int(nil), assignedFrames...)
}

func (m *Manager) release(processId string) {
	for _, frame := range m.pageTables[processId] {
		m.frames[frame] = freeFrame
	}
	delete(m.pageTables, processId)
	for i, id := range m.loadOrder {
		if id == processId {
			m.loadOrder = append(m.loadOrder[:i], m.loadOrder[i+1:]...)
			break
		}
	}
}

// Package filesystem is a toy file store with a single current directory.
package filesystem

import (
	"errors"
	"fmt"
	"sync"
)

const RootDirectory = "root"

var (
	ErrExists      = errors.New("entry already exists")
	ErrNotFound    = errors.New("entry not found")
	ErrIsDirectory = errors.New("entry is a directory")
	ErrInvalidName = errors.New("invalid entry name")
)

type entry struct {
	directory bool
	content   string
}

type FileSystem struct {
	mu      sync.RWMutex
	current string
	entries map[string]*entry
	// creation order of the entries
	names []string
}

func New() *FileSystem {
	return &FileSystem{
		current: RootDirectory,
		entries: make(map[string]*entry),
		names:   make([]string, 0),
	}
}

func (f *FileSystem) CurrentDirectory() string {
	return f.current
}

func (f *FileSystem) Mkdir(name string) error {
	return f.create(name, &entry{directory: true})
}

func (f *FileSystem) Touch(name string, content string) error {
	return f.create(name, &entry{content: content})
}

// List returns entry names in creation order.
func (f *FileSystem) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.names...)
}

func (f *FileSystem) Remove(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.entries[name]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, f.current, name)
	}
	delete(f.entries, name)
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			break
		}
	}
	return nil
}

func (f *FileSystem) Read(name string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	file, err := f.file(name)
	if err != nil {
		return "", err
	}
	return file.content, nil
}

// Write replaces the content of an existing file.
func (f *FileSystem) Write(name string, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := f.file(name)
	if err != nil {
		return err
	}
	file.content = content
	return nil
}

func (f *FileSystem) create(name string, e *entry) error {
	if name == "" {
		return ErrInvalidName
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.entries[name]; ok {
		return fmt.Errorf("%w: %s/%s", ErrExists, f.current, name)
	}
	f.entries[name] = e
	f.names = append(f.names, name)
	return nil
}

func (f *FileSystem) file(name string) (*entry, error) {
	e, ok := f.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, f.current, name)
	}
	if e.directory {
		return nil, fmt.Errorf("%w: %s/%s", ErrIsDirectory, f.current, name)
	}
	return e, nil
}

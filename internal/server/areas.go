package server

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/greedyroute/core"
	"github.com/katalvlaran/greedyroute/roadnet"
)

// ErrAreaNotFound: the requested area is not in the catalogue.
var ErrAreaNotFound = errors.New("server: area not found")

// Areas is the catalogue of road networks a session can be opened on.
type Areas interface {
	Names() []string
	Load(ctx context.Context, name string) (*core.Graph, error)
}

// FileAreas loads areas from files with roadnet and keeps each loaded graph.
// Loaded graphs are shared by every session of the area and never modified.
type FileAreas struct {
	files map[string]string
	opts  []roadnet.Option

	mu     sync.Mutex
	loaded map[string]*core.Graph
}

// NewFileAreas maps area names to graph files.
func NewFileAreas(files map[string]string, opts ...roadnet.Option) *FileAreas {
	cp := make(map[string]string, len(files))
	for k, v := range files {
		cp[k] = v
	}

	return &FileAreas{files: cp, opts: opts, loaded: make(map[string]*core.Graph)}
}

// Names returns the area names sorted.
func (a *FileAreas) Names() []string {
	names := make([]string, 0, len(a.files))
	for name := range a.files {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Load returns the graph of name, reading its file on first use.
func (a *FileAreas) Load(ctx context.Context, name string) (*core.Graph, error) {
	path, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAreaNotFound, name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if g, ok := a.loaded[name]; ok {
		return g, nil
	}
	g, err := roadnet.LoadFile(ctx, path, a.opts...)
	if err != nil {
		return nil, fmt.Errorf("server: load area %q: %w", name, err)
	}
	a.loaded[name] = g

	return g, nil
}

// StaticAreas serves prebuilt graphs, e.g. synthetic demo networks.
type StaticAreas map[string]*core.Graph

// Names returns the area names sorted.
func (s StaticAreas) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Load returns the graph of name.
func (s StaticAreas) Load(_ context.Context, name string) (*core.Graph, error) {
	g, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAreaNotFound, name)
	}

	return g, nil
}

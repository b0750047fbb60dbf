// Package engine wires the resolver registry, the style cache and the render
// adapter into a single entry point for widgets.
package engine

import (
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/stylekit/internal/adapter"
	"github.com/alexisbeaulieu97/stylekit/internal/cache"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

// Options configures an Engine. Zero values are usable.
type Options struct {
	Theme         theme.Theme
	CacheCapacity int
	Registry      *variant.Registry
	Logger        *logger.Logger
}

// Stats reports cache effectiveness since the engine was created.
type Stats struct {
	Hits     uint64 `json:"hits" yaml:"hits"`
	Misses   uint64 `json:"misses" yaml:"misses"`
	Size     int    `json:"size" yaml:"size"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

type entry struct {
	descriptor style.Descriptor
	native     adapter.NativeStyle
}

// Engine memoizes resolved and adapted styles for the active theme.
type Engine struct {
	mu       sync.RWMutex
	theme    theme.Theme
	registry *variant.Registry
	cache    *cache.Cache[entry]
	log      *logger.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates an engine. A nil registry uses the process-wide one and a nil
// logger discards output.
func New(opts Options) *Engine {
	registry := opts.Registry
	if registry == nil {
		registry = variant.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	th := opts.Theme
	if th.Colors.Primary == "" {
		th = theme.Compose(th.Design, th.Mode, nil)
	}
	return &Engine{
		theme:    th,
		registry: registry,
		cache:    cache.New[entry](opts.CacheCapacity),
		log:      log,
	}
}

// Theme returns the active theme.
func (e *Engine) Theme() theme.Theme {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.theme
}

// SetTheme replaces the active theme and drops every cached style.
func (e *Engine) SetTheme(th theme.Theme) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.theme = th
	e.cache.Clear()
	e.log.WithFields(map[string]any{
		"design": th.Design.String(),
		"mode":   th.Mode.String(),
	}).Debug("theme replaced, style cache cleared")
}

// Bind keeps the engine in step with a theme manager.
func (e *Engine) Bind(m *theme.Manager) {
	e.SetTheme(m.Theme())
	m.Subscribe(e.SetTheme)
}

// Reset drops every cached style.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache.Clear()
}

// Resolve returns the descriptor for a component under the active theme.
// The result is a copy and may be modified by the caller.
func (e *Engine) Resolve(kind variant.Kind, state variant.State, opts variant.Options, caps adapter.Capabilities) style.Descriptor {
	return e.lookup(kind, state, opts, caps).descriptor.Clone()
}

// Render returns the component style adapted for a backend. Nested values
// are shared with the cache and must be treated as read-only.
func (e *Engine) Render(kind variant.Kind, state variant.State, opts variant.Options, caps adapter.Capabilities) adapter.NativeStyle {
	native := e.lookup(kind, state, opts, caps).native
	out := make(adapter.NativeStyle, len(native))
	for k, v := range native {
		out[k] = v
	}
	return out
}

// Stats returns hit and miss counters and the current cache size.
func (e *Engine) Stats() Stats {
	return Stats{
		Hits:     e.hits.Load(),
		Misses:   e.misses.Load(),
		Size:     e.cache.Len(),
		Capacity: e.cache.Capacity(),
	}
}

func (e *Engine) lookup(kind variant.Kind, state variant.State, opts variant.Options, caps adapter.Capabilities) entry {
	// The read lock spans the miss path so a concurrent SetTheme cannot
	// interleave a stale entry after its Clear.
	e.mu.RLock()
	defer e.mu.RUnlock()

	key := cache.Key(cache.KeyParts{
		Kind:    kind,
		Design:  e.theme.Design,
		State:   state,
		Options: opts,
		Backend: caps.Fingerprint(),
	})
	if hit, ok := e.cache.Get(key); ok {
		e.hits.Add(1)
		return hit
	}
	e.misses.Add(1)

	d := e.registry.Resolve(e.theme, kind, state, opts)
	resolved := entry{descriptor: d, native: adapter.Adapt(d, caps)}
	e.cache.Put(key, resolved)
	e.log.WithFields(map[string]any{"key": key}).Debug("style resolved")
	return resolved
}

// Package variant resolves a portable style descriptor for a component kind
// in one design language. Resolvers are pure: the theme is always an
// explicit argument and nothing is cached here.
package variant

import (
	"os"
	"sync"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

// Resolver computes the descriptor of one design language. Inputs are
// already normalized when a Registry calls it.
type Resolver func(th theme.Theme, kind Kind, state State, opts Options) style.Descriptor

// Registry is the dispatch table from design language to resolver. Designs
// without a resolver use Flat and are reported once per Registry.
type Registry struct {
	mu        sync.Mutex
	resolvers map[theme.Design]Resolver
	warned    map[theme.Design]struct{}
	log       *logger.Logger
}

// NewRegistry returns a registry with every built-in resolver. A nil logger
// writes warnings to stderr.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = defaultLogger()
	}
	r := &Registry{
		resolvers: make(map[theme.Design]Resolver),
		warned:    make(map[theme.Design]struct{}),
		log:       log,
	}
	r.Register(theme.DesignFlat, resolveFlat)
	r.Register(theme.DesignNeumorphic, resolveNeumorphic)
	r.Register(theme.DesignSkeuomorphic, resolveSkeuomorphic)
	r.Register(theme.DesignGlassmorphic, resolveGlassmorphic)
	r.Register(theme.DesignRetro, resolveRetro)
	return r
}

func defaultLogger() *logger.Logger {
	log, err := logger.New(logger.Options{Level: "warn", Writer: os.Stderr})
	if err != nil {
		return logger.Nop()
	}
	return log
}

// Register installs or replaces the resolver for a design.
func (r *Registry) Register(design theme.Design, fn Resolver) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers[design] = fn
}

// Supports reports whether a design has its own resolver.
func (r *Registry) Supports(design theme.Design) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.resolvers[design]
	return ok
}

// Resolve computes the descriptor for th.Design. It never fails: options are
// clamped and unknown designs resolve as Flat.
func (r *Registry) Resolve(th theme.Theme, kind Kind, state State, opts Options) style.Descriptor {
	kind = kind.Normalize()
	opts = opts.Normalize()
	return r.lookup(th.Design)(th, kind, state, opts)
}

func (r *Registry) lookup(design theme.Design) Resolver {
	r.mu.Lock()
	fn, ok := r.resolvers[design]
	if ok {
		r.mu.Unlock()
		return fn
	}
	fn = r.resolvers[theme.DesignFlat]
	_, warned := r.warned[design]
	r.warned[design] = struct{}{}
	r.mu.Unlock()

	if !warned {
		r.log.Fallback(design.String(), theme.DesignFlat.String())
	}
	if fn == nil {
		return resolveFlat
	}
	return fn
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
	})
	return defaultRegistry
}

// Resolve uses the process-wide registry.
func Resolve(th theme.Theme, kind Kind, state State, opts Options) style.Descriptor {
	return Default().Resolve(th, kind, state, opts)
}

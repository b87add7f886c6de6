package classify

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/artem13815/screening/pkg/nlp"
)

// Loader owns the process-wide serving classifier for one artifact name.
// The first Get loads it from the store exactly once under concurrent
// callers; afterwards reads are lock-free. Reload builds a brand-new instance
// and swaps the pointer atomically, so no caller ever observes a
// half-replaced model; in-flight requests keep the generation they started
// with.
type Loader struct {
	store    *Store
	embedder nlp.Embedder
	name     string

	group   singleflight.Group
	current atomic.Pointer[Classifier]
}

func NewLoader(store *Store, embedder nlp.Embedder, name string) *Loader {
	return &Loader{store: store, embedder: embedder, name: name}
}

// Name returns the artifact name this loader serves.
func (l *Loader) Name() string { return l.name }

// Loaded reports whether a generation is currently being served.
func (l *Loader) Loaded() bool { return l.current.Load() != nil }

// Get returns the serving classifier, loading it on first use.
func (l *Loader) Get(ctx context.Context) (*Classifier, error) {
	if c := l.current.Load(); c != nil {
		return c, nil
	}
	v, err, _ := l.group.Do("load", func() (any, error) {
		// Another caller may have won the race before our Do started.
		if c := l.current.Load(); c != nil {
			return c, nil
		}
		c, err := l.store.Load(l.name, l.embedder)
		if err != nil {
			return nil, err
		}
		l.current.Store(c)
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Classifier), nil
}

// Reload loads a fresh instance from disk and atomically replaces the served
// one. The previous generation stays valid for requests already holding it.
func (l *Loader) Reload(ctx context.Context) error {
	c, err := l.store.Load(l.name, l.embedder)
	if err != nil {
		return err
	}
	l.current.Store(c)
	return nil
}

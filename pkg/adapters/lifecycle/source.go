// Package lifecycle exposes store change events as a lifecycle.Source so a
// host process can consume them next to its other event sources.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/plans/pkg/core"
)

type changeSource struct {
	changes <-chan core.Event
	out     chan lifecycle.Event
}

// NewSource wraps a channel returned by core.Watchable.Watch.
// The source's channel closes when changes closes or ctx passed to Start ends.
func NewSource(changes <-chan core.Event) lifecycle.Source {
	return &changeSource{
		changes: changes,
		out:     make(chan lifecycle.Event),
	}
}

func (s *changeSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events in the background and returns immediately.
func (s *changeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, s.forward)
	return nil
}

func (s *changeSource) forward(ctx context.Context) error {
	defer close(s.out)
	for {
		var (
			e  core.Event
			ok bool
		)
		select {
		case <-ctx.Done():
			return nil
		case e, ok = <-s.changes:
		}
		if !ok {
			return nil
		}

		// core.Event satisfies lifecycle.Event through String().
		select {
		case s.out <- e:
		case <-ctx.Done():
			return nil
		}
	}
}

// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nav

import (
	"sync"

	"freshmart/cli/internal/session"
)

// Subscriber is implemented by *session.Manager.
type Subscriber interface {
	Subscribe(fn func(session.State)) (unsubscribe func())
}

// Bar keeps the navigation in step with the session. It re-renders on every
// transition until Close is called.
type Bar struct {
	mu          sync.Mutex
	state       session.State
	links       []Link
	render      func(session.State, []Link)
	unsubscribe func()
}

// NewBar subscribes to src. render may be nil; when set it is called with the
// current state straight away and after every transition, on the goroutine
// that caused the transition.
func NewBar(src Subscriber, render func(session.State, []Link)) *Bar {
	b := &Bar{render: render}
	b.unsubscribe = src.Subscribe(b.update)
	return b
}

func (b *Bar) update(s session.State) {
	links := Links(s)
	b.mu.Lock()
	b.state, b.links = s, links
	render := b.render
	b.mu.Unlock()
	if render != nil {
		render(s, links)
	}
}

// State returns the last state the bar received.
func (b *Bar) State() session.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Links returns the entries currently shown.
func (b *Bar) Links() []Link {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Link(nil), b.links...)
}

// Close detaches the bar from the session. It is safe to call more than once.
func (b *Bar) Close() {
	b.mu.Lock()
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.render = nil
	b.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

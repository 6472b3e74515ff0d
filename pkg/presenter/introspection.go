package presenter

import "github.com/aretw0/introspection"

// PresenterState summarizes the display list.
type PresenterState struct {
	Count   int `json:"count"`
	Done    int `json:"done"`
	Pending int `json:"pending"`
}

// State implements introspection.Introspectable.
func (p *Presenter) State() any {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := PresenterState{Count: len(p.display)}
	for _, n := range p.display {
		if n.IsComplete {
			s.Done++
		} else {
			s.Pending++
		}
	}
	return s
}

// ComponentType implements introspection.Component.
func (p *Presenter) ComponentType() string {
	return "presenter"
}

var (
	_ introspection.Introspectable = (*Presenter)(nil)
	_ introspection.Component      = (*Presenter)(nil)
)

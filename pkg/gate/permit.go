package gate

import "sync"

// Permit is one granted slot. Release returns it; further calls are no-ops.
// Permits issued while the gate is unbounded hold nothing.
type Permit struct {
	once    sync.Once
	release func()
}

// Release returns the slot. It is safe to call more than once and on a nil
// Permit.
func (p *Permit) Release() {
	if p == nil {
		return
	}
	p.once.Do(func() {
		if p.release != nil {
			p.release()
		}
	})
}

// Bounded reports whether the permit holds a slot in a limiter.
func (p *Permit) Bounded() bool {
	return p != nil && p.release != nil
}

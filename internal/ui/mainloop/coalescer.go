package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into a single posted task that
// runs the most recently submitted callback. File watchers emit several
// events per save; this keeps one refresh per burst.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	latest    map[string]func()
	post      func(func())
	destroyed bool
}

func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending: make(map[string]bool),
		latest:  make(map[string]func()),
		post:    post,
	}
}

func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.latest[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	c.mu.Unlock()

	c.post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.latest[key]
	delete(c.pending, key)
	delete(c.latest, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if destroyed || fn == nil {
		return
	}
	fn()
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.latest = map[string]func(){}
	c.mu.Unlock()
}

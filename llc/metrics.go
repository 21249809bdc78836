package llc

// Metrics receives the outcome of every access. Implementations must be safe
// for use from the goroutine that drives the cache.
type Metrics interface {
	Hit()
	Miss()
	Evict(dirty bool)
	Bypass()
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

// Hit does nothing.
func (NoopMetrics) Hit() {}

// Miss does nothing.
func (NoopMetrics) Miss() {}

// Evict does nothing.
func (NoopMetrics) Evict(bool) {}

// Bypass does nothing.
func (NoopMetrics) Bypass() {}

// Package prom exports the last-level cache and arbiter counters to
// Prometheus.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sarchlab/llcrepl/hooking"
	"github.com/sarchlab/llcrepl/llc"
	"github.com/sarchlab/llcrepl/replacement"
)

// Adapter implements llc.Metrics and, as a hook on a replacement engine,
// tracks the arbiter. Safe for concurrent use; all Prometheus metric types
// are goroutine-safe.
type Adapter struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	evicts   *prometheus.CounterVec
	bypasses prometheus.Counter

	windows  prometheus.Counter
	switches prometheus.Counter
	decays   prometheus.Counter
	active   *prometheus.GaugeVec
	missRate prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(
	reg prometheus.Registerer,
	ns, sub string,
	constLabels prometheus.Labels,
) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		})
	}

	a := &Adapter{
		hits:     counter("hits_total", "Cache hits"),
		misses:   counter("misses_total", "Cache misses"),
		bypasses: counter("bypasses_total", "Misses that were not allocated"),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "evictions_total",
				Help:        "Cache evictions by line state",
				ConstLabels: constLabels,
			},
			[]string{"kind"},
		),
		windows:  counter("arbiter_windows_total", "Closed miss windows"),
		switches: counter("arbiter_switches_total", "Sub-policy switches"),
		decays:   counter("arbiter_decays_total", "Scoreboard resets"),
		active: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "arbiter_active",
				Help:        "1 for the active sub-policy, 0 otherwise",
				ConstLabels: constLabels,
			},
			[]string{"sub_policy"},
		),
		missRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "arbiter_window_miss_ratio",
			Help:        "Miss ratio of the last closed window",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(a.hits, a.misses, a.evicts, a.bypasses,
		a.windows, a.switches, a.decays, a.active, a.missRate)

	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Bypass increments the bypass counter.
func (a *Adapter) Bypass() { a.bypasses.Inc() }

// Evict increments the eviction counter of the line state.
func (a *Adapter) Evict(dirty bool) {
	kind := "clean"
	if dirty {
		kind = "dirty"
	}

	a.evicts.WithLabelValues(kind).Inc()
}

// Func consumes the arbiter hooks of a replacement engine.
func (a *Adapter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != replacement.HookPosWindowClosed {
		return
	}

	result, ok := ctx.Item.(replacement.WindowResult)
	if !ok {
		return
	}

	a.windows.Inc()

	if result.Switched {
		a.switches.Inc()
	}

	if result.Decayed {
		a.decays.Inc()
	}

	a.SetActive(result.Active)

	if result.Accesses > 0 {
		a.missRate.Set(float64(result.Misses) / float64(result.Accesses))
	}
}

// SetActive marks p as the active sub-policy.
func (a *Adapter) SetActive(p replacement.SubPolicy) {
	for _, sub := range []replacement.SubPolicy{
		replacement.SubPolicyRecency,
		replacement.SubPolicySweep,
	} {
		v := 0.0
		if sub == p {
			v = 1
		}

		a.active.WithLabelValues(sub.String()).Set(v)
	}
}

var (
	_ llc.Metrics  = (*Adapter)(nil)
	_ hooking.Hook = (*Adapter)(nil)
)

// Package metrics exposes Prometheus collectors observing the two
// consensus-critical quantities this module must get exactly right: gas
// spent per syscall and syscall invocation counts (SPEC_FULL.md §2.1's
// ambient-stack addition; "exact gas pricing" made observable).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nspcc-dev/neo-interop/pkg/registry"
)

// Collectors bundles the counters a session reports through. It satisfies
// registry.Dispatched so a *registry.Registry can report directly into it.
type Collectors struct {
	gasSpent        *prometheus.CounterVec
	syscallsInvoked *prometheus.CounterVec
}

// New constructs and registers the collectors against reg. Pass
// prometheus.NewRegistry() in tests to avoid colliding with the global
// default registry.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		gasSpent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neo_interop",
			Name:      "gas_spent_total",
			Help:      "Gas charged per interop method, in 10^-3 GAS units.",
		}, []string{"method"}),
		syscallsInvoked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neo_interop",
			Name:      "syscalls_invoked_total",
			Help:      "Successful interop dispatches per method.",
		}, []string{"method"}),
	}
	reg.MustRegister(c.gasSpent, c.syscallsInvoked)
	return c
}

// ObserveDispatch implements registry.Dispatched.
func (c *Collectors) ObserveDispatch(name string, price int64) {
	c.syscallsInvoked.WithLabelValues(name).Inc()
	if price > 0 {
		c.gasSpent.WithLabelValues(name).Add(float64(price))
	}
}

// ObserveVariableGas records a dynamically computed charge (Storage.Put/
// PutEx, spec §4.8) against method, separately from the static price
// ObserveDispatch reports.
func (c *Collectors) ObserveVariableGas(method string, price int64) {
	c.gasSpent.WithLabelValues(method).Add(float64(price))
}

var _ registry.Dispatched = (*Collectors)(nil)

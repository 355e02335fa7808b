package metric

import "github.com/prometheus/client_golang/prometheus/collectors"

// RegisterRuntime adds the Go runtime and process collectors, so exported
// timings can be read next to GC and memory figures of the same run.
// Returns the registry for method chaining.
func (r *Registry) RegisterRuntime() *Registry {
	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Package metrics exports stream handle statistics to Prometheus.
//
//	out, _ := stream.Stdout()
//	errH, _ := stream.Stderr()
//	prometheus.MustRegister(metrics.NewCollector(out, errH))
//
// Every metric carries a "stream" label with the stream name.
package metrics

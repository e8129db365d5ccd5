// Package metric provides a Prometheus registry wrapper and an HTTP
// exposition server for container metrics.
//
// The Registry tracks collectors under a "container.metric" key so that
// duplicate registrations are rejected with a classified error instead of a
// panic, and so containers can unregister their metrics on teardown.
//
// Containers do not depend on this package directly for their statistics:
// the stats package is always on, and Prometheus export is opted into per
// container via the WithMetrics functional option, following the
// dual-tracking pattern described in the bounded and fifo packages.
//
// The Server exposes the registry over HTTP:
//
//	registry := metric.NewRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//	go server.Start()
//	defer server.Stop()
package metric

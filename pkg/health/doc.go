// Package health provides HTTP handlers for health probes.
//
// It implements JSON liveness and readiness endpoints compatible with
// Docker, Kubernetes, and 3rd-party monitoring services.
//
// [LivenessHandler] provides a simple always-OK endpoint for process
// liveness. [ReadinessHandler] executes a set of [Checks] in parallel with
// a configurable timeout and responds 503 when any of them fails.
//
// Register health endpoints on your router:
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//	    "storage": store.Healthcheck,
//	}))
package health

// Package health provides HTTP handlers for liveness and readiness checks.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] executes a set of [Checks] in parallel with a shared
// timeout and answers 503 if any of them fails.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mail": sender.Healthcheck,
//	}, health.WithTimeout(3*time.Second)))
//
// Handlers respond with plain text ("OK" / "Service Unavailable") unless the
// client asks for JSON with an Accept: application/json header or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "mail": {"status": "unhealthy", "error": "smtp dial localhost:25: connection refused"}
//	  }
//	}
//
// A check that fails after the timeout expired reports [ErrCheckTimeout].
package health

// Package health reports whether a process can resolve its credentials.
//
// A Checker reports a Result with a Status: Healthy, Degraded, or Unhealthy.
// Two checkers cover the credential sources:
//
//   - SecretfileChecker: the Secretfile can be read and parsed.
//   - VaultChecker: Vault answers, is initialized and unsealed, and accepts
//     the process's session.
//
// An Aggregator runs checkers together and reports them in registration
// order.
//
//	agg := health.NewAggregator()
//	agg.Register(health.SecretfileChecker(resolver.Secretfile))
//	agg.Register(health.VaultChecker(health.VaultCheckerConfig{Server: client, Session: backend}))
//
//	report := agg.Run(ctx)
//	if report.Status == health.StatusUnhealthy {
//	    log.Printf("credentials unavailable: %v", report.Failed())
//	}
//
// # HTTP Endpoints
//
//	mux := http.NewServeMux()
//	health.RegisterHandlers(mux, agg) // /healthz, /readyz, /health
package health

// Package metrics defines and registers all custom Prometheus metrics for the
// itsyourradio API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "iyr"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (all failure causes share one label so
//     the metric cannot leak which part of the credential was wrong)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role assigned at registration
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// PasswordHashDuration observes how long bcrypt operations take, including
// time spent waiting for a slot in the bounded hashing pool. A climbing tail
// means the pool is saturated and logins are queueing.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of bcrypt hash and verify operations.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	},
)

// TokenValidationFailures counts rejected bearer tokens.
// Label:
//   - kind: "malformed", "invalid", or "expired". Internal detail only;
//     clients always see a uniform 401.
var TokenValidationFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validation_failures_total",
		Help:      "Total number of bearer tokens rejected, by failure kind.",
	},
	[]string{"kind"},
)

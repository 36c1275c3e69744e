// Package metrics defines and registers all custom Prometheus metrics for the
// membership API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time
// and are exposed through the router's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "membership"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Registration metrics ──────────────────────────────────────────────────────

// RegistrationsSubmittedTotal counts public registration submissions that
// passed validation and were stored.
var RegistrationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_submitted_total",
		Help:      "Total number of registration requests submitted.",
	},
)

// RegistrationStatusTotal counts status mutations on registration requests.
// Label:
//   - status: the target status ("pending", "contacted", "approved")
var RegistrationStatusTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_status_total",
		Help:      "Total number of registration status updates, by target status.",
	},
	[]string{"status"},
)

// PromotionsTotal counts member promotions triggered by approvals.
// Label:
//   - result: "created" (new member row) or "updated" (existing row overwritten)
var PromotionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "promotions_total",
		Help:      "Total number of registration-to-member promotions, by outcome.",
	},
	[]string{"result"},
)

// ── Member metrics ────────────────────────────────────────────────────────────

// MembersCreatedTotal counts members created directly by an operator.
var MembersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_created_total",
		Help:      "Total number of members created through the dashboard.",
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks entries waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each worker channel.",
	},
	[]string{"worker_id"},
)

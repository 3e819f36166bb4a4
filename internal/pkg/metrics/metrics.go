// Package metrics defines the custom Prometheus collectors for the Campulse
// API. HTTP request metrics are registered separately by the echoprometheus
// middleware in the router.
//
// Collectors are registered with the default registry on package init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campulse"

// ── Auth ──────────────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login and signup attempts.
// Labels:
//   - op: "login" or "signup"
//   - result: "ok" or "rejected"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login and signup attempts, by outcome.",
	},
	[]string{"op", "result"},
)

// ── Planner ───────────────────────────────────────────────────────────────────

// TaskMutationsTotal counts successful task writes.
// Label:
//   - op: "create", "update" or "delete"
var TaskMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_mutations_total",
		Help:      "Total number of task create, update and delete operations.",
	},
	[]string{"op"},
)

// ── Bookmarks ─────────────────────────────────────────────────────────────────

// BookmarksProcessedTotal counts bookmark toggles applied by the dispatcher.
// Label:
//   - result: "added", "removed" or "error"
var BookmarksProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmarks_processed_total",
		Help:      "Total number of bookmark toggles processed, by result.",
	},
	[]string{"result"},
)

// BookmarkQueueDepth tracks pending toggles per dispatcher worker.
var BookmarkQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bookmark_queue_depth",
		Help:      "Current number of bookmark toggles pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exposed on /metrics. Registration happens once at package init
// through promauto.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests processed, by method, route and status code.",
	}, []string{"method", "route", "status"})

	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_registrations_total",
		Help: "Users registered for the first time.",
	})

	LessonsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lessons_created_total",
		Help: "Lessons submitted.",
	})

	TogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lesson_toggles_total",
		Help: "Like and favorite toggles applied.",
	}, []string{"kind"})

	ReportsFiledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reports_filed_total",
		Help: "Abuse reports filed.",
	})

	PremiumActivationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "premium_activations_total",
		Help: "Premium subscriptions confirmed as paid.",
	})
)

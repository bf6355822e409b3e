package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntitiesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_entities_created_total",
			Help: "Total number of created courses, users and assignments",
		},
		[]string{"entity"},
	)

	CoursesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cms_courses_deleted_total",
			Help: "Total number of deleted courses",
		},
	)

	Enrollments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_enrollments_total",
			Help: "Users added to courses, by the set they were added to",
		},
		[]string{"role"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)

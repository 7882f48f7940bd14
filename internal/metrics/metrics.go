package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TweetsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microtweet_tweets_created_total",
		Help: "Tweets created, by kind.",
	}, []string{"kind"})

	CascadeDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microtweet_cascade_deleted_rows_total",
		Help: "Rows removed by tweet deletions, by table.",
	}, []string{"table"})

	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microtweet_validation_failures_total",
		Help: "Rejected tweet writes, by failing field.",
	}, []string{"field"})

	ReactionsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microtweet_reactions_created_total",
		Help: "Likes and bookmarks created.",
	}, []string{"type"})

	MediaUploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "microtweet_media_upload_bytes",
		Help:    "Size of stored media attachments.",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microtweet_http_requests_total",
		Help: "HTTP requests, by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "microtweet_http_request_duration_seconds",
		Help:    "HTTP request latency, by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

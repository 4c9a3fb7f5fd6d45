package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_page_renders_total",
			Help: "Total number of pages rendered, by slug and content source",
		},
		[]string{"slug", "source"},
	)

	ContentFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_content_fetches_total",
			Help: "Total number of content store fetches, by result",
		},
		[]string{"result"},
	)

	SectionRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_section_renders_total",
			Help: "Total number of section blocks rendered, by type",
		},
		[]string{"section_type"},
	)

	SectionsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "site_sections_skipped_total",
			Help: "Total number of section blocks skipped for unknown type",
		},
	)

	InquirySubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_inquiry_submissions_total",
			Help: "Total number of inquiry submissions, by status",
		},
		[]string{"status"},
	)

	InquiryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "site_inquiry_duration_seconds",
			Help: "Duration of inquiry submission processing in seconds",
		},
		[]string{"status"},
	)
)

// Content fetch result labels.
const (
	FetchHit      = "hit"
	FetchCacheHit = "cache_hit"
	FetchNotFound = "not_found"
	FetchError    = "error"
)

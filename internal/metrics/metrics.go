package metrics

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"resty.dev/v3"
)

const (
	ActionLike    = "like"
	ActionComment = "comment"

	OutcomeApplied = "applied"
	OutcomeFailed  = "failed"
	OutcomeStale   = "stale"
)

var (
	apiLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelview_api_request_latency",
			Help:    "Histogram of post API request latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "path", "status_code"},
	)

	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reelview_mutations_total",
		Help: "The total number of like and comment mutations by outcome",
	}, []string{"action", "outcome"})
)

func ObserveMutation(action, outcome string) {
	Mutations.WithLabelValues(action, outcome).Inc()
}

// LatencyMiddleware is a resty response middleware observing request latency.
func LatencyMiddleware(_ *resty.Client, response *resty.Response) error {
	reqURL, err := url.Parse(response.Request.URL)
	if err != nil {
		return err
	}

	apiLatency.WithLabelValues(
		response.Request.Method,
		Route(reqURL.Path),
		fmt.Sprintf("%d", response.StatusCode()),
	).Observe(response.Duration().Seconds())

	return nil
}

// Route collapses post ids in API paths to keep label cardinality bounded.
func Route(path string) string {
	const postPrefix = "/api/post/"

	if rest, ok := strings.CutPrefix(path, postPrefix); ok && rest != "" {
		return postPrefix + "{id}"
	}
	return path
}

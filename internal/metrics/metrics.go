package metrics

import "time"

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAssessment records a finished assessment.
func (r *Registry) RecordAssessment(rating string, score int) {
	r.AssessmentsTotal.WithLabelValues(rating).Inc()
	r.ResilienceScore.Observe(float64(score))
}

func (r *Registry) RecordGraph(nodes int) {
	r.GraphNodes.Observe(float64(nodes))
}

package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameDrawsGenerated     = "lottery_draws_generated_total"
	MetricNameEncountersRecorded = "lottery_encounters_recorded_total"
	MetricNameSummariesComputed  = "lottery_summaries_computed_total"
	MetricNameAmountSpent        = "lottery_amount_spent_dollars"
	MetricNameAmountWon          = "lottery_amount_won_dollars"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextDrawsGenerated     = "Total number of lottery draws generated"
	HelpTextEncountersRecorded = "Total number of encounters recorded"
	HelpTextSummariesComputed  = "Total number of pattern summaries computed"
	HelpTextAmountSpent        = "Total ticket cost of recorded encounters"
	HelpTextAmountWon          = "Total winnings of recorded encounters"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelGame   = "game"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// UnmatchedRoute labels requests that did not hit a registered route
const UnmatchedRoute = "unmatched"

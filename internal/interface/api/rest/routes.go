package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)

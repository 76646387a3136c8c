package ports

import "time"

//go:generate mockery --name MetricsProvider --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename MetricsProvider.go
type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementPageViews(page string, success bool)

	SetServiceHealth(healthy bool)
}

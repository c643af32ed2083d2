package health

import "context"

// CatalogPinger checks catalog snapshot store availability.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}

// AnalyticsChecker checks the analytics collaborator connection.
type AnalyticsChecker interface {
	HealthCheck(ctx context.Context) error
}

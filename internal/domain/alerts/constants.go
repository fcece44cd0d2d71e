package alerts

import "time"

const (
	// LookAheadWindow is how far into the future deadline scanning reaches.
	LookAheadWindow = 30 * 24 * time.Hour

	// RevisionKmThreshold is the remaining-mileage margin below which a
	// service revision alert is raised.
	RevisionKmThreshold = 5000

	// DashboardLimit caps the ranked alert list shown on the dashboard.
	DashboardLimit = 5
)

package catalog

import (
	"github.com/framelight/FLS-BookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interface for database access
type DBExecutor = dbmetrics.DBExecutor

package website

import "github.com/m04kA/SMC-SiteBookings/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

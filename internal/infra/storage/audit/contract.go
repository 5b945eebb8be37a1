package audit

import "github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

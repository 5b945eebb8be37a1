package booking

import "github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics: подходят *sql.DB, *dbmetrics.DB и транзакции
type DBExecutor = dbmetrics.DBExecutor

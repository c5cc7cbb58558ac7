package engineconfig

import "github.com/jaysonsaraujo/phm-app/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

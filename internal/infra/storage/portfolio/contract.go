package portfolio

import "github.com/m04kA/SMC-NailStudio/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

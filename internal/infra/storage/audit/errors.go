package audit

import "errors"

var (
	ErrBuildQuery = errors.New("audit.repository: failed to build query")
	ErrExecQuery  = errors.New("audit.repository: failed to execute query")
	ErrScanRow    = errors.New("audit.repository: failed to scan row")
)

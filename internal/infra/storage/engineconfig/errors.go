package engineconfig

import "errors"

var (
	ErrBuildQuery = errors.New("engineconfig.repository: failed to build query")
	ErrExecQuery  = errors.New("engineconfig.repository: failed to execute query")
	ErrScanRow    = errors.New("engineconfig.repository: failed to scan row")
	ErrBadValue   = errors.New("engineconfig.repository: malformed config value")
)

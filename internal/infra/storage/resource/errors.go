package resource

import "errors"

var (
	ErrLocationNotFound  = errors.New("resource.repository: location not found")
	ErrCelebrantNotFound = errors.New("resource.repository: celebrant not found")
	ErrDuplicateName     = errors.New("resource.repository: name already registered")
	ErrBuildQuery        = errors.New("resource.repository: failed to build query")
	ErrExecQuery         = errors.New("resource.repository: failed to execute query")
	ErrScanRow           = errors.New("resource.repository: failed to scan row")
)

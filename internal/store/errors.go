package store

import "errors"

var (
	ErrUserNotFound = errors.New("user was not found")

	ErrMessageNotFound = errors.New("message was not found")
)

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to scan rows")

	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

package custom_errors

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrTagNotFound   = errors.New("tag not found")
	ErrDatabaseQuery = errors.New("database query failed")
	ErrCacheMiss     = errors.New("cache miss")
	ErrInvalidInput  = errors.New("invalid input")
)

package domain

import "errors"

var (
	ErrConfigNotFound = errors.New("tv config not found")
	ErrTVNotFound     = errors.New("tv not found in config")
	ErrAmbiguousTV    = errors.New("multiple tvs configured")
	ErrSessionUsed    = errors.New("session already used")
)

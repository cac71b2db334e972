package site

import "errors"

// Sentinel errors for site builds.
var (
	ErrInvalidOptions  = errors.New("invalid build options")
	ErrContentNotFound = errors.New("content directory not found")
	ErrReadPage        = errors.New("failed to read markdown page")
	ErrWritePage       = errors.New("failed to write HTML page")
	ErrPagesFailed     = errors.New("some pages failed to build")
)

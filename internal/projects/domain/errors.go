package domain

import "errors"

var (
	ErrNotFound    = errors.New("project not found")
	ErrInvalidType = errors.New("invalid project type")
)

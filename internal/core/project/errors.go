package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project: not found")
	ErrInvalidStatus   = errors.New("project: invalid status")
	ErrInvalidID       = errors.New("project: invalid id")
)

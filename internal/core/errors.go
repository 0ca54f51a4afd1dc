package core

import "errors"

var (
	ErrFilterNotFound      = errors.New("filter not found")
	ErrFilterAlreadyExists = errors.New("filter already exists")
	ErrInvalidFilterID     = errors.New("invalid filter id")

	ErrInvalidConfig = errors.New("invalid config")

	ErrConfigVersionMismatch = errors.New("config version mismatch")

	ErrInvalidRequest = errors.New("invalid request")
)

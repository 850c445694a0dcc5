package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified     = errors.New("app version is not specified")
	ErrServiceNameIsNotSpecified = errors.New("service name is not specified")
)

package client

import "errors"

var (
	ErrNoServices = errors.New("client services are not provided")
	ErrNoUI       = errors.New("user interface is not provided")
)

package domain

import "errors"

var (
	ErrEmptyPath    = errors.New("path must not be empty")
	ErrNothingOpen  = errors.New("no file is open")
	ErrPollInFlight = errors.New("status poll already in flight")
	ErrRunInFlight  = errors.New("pipeline is already running")
)

// ErrRemoteReported marks failures the service reported in its payload,
// as opposed to transport or HTTP failures.
var ErrRemoteReported = errors.New("remote reported failure")

package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrConfigFileExists    = errors.New("config file already exists")

	ErrInvalidServerURL      = errors.New("invalid server url")
	ErrFailedToCreateRequest = errors.New("failed to create request")
	ErrFailedToDecode        = errors.New("failed to decode response")

	ErrInvalidLevel   = errors.New("invalid logger level")
	ErrInvalidPattern = errors.New("invalid logger pattern")
	ErrInvalidLogID   = errors.New("invalid log id")
	ErrInvalidInput   = errors.New("invalid input")

	ErrLifecycleClosed = errors.New("fetch lifecycle closed")
	ErrRequestPanicked = errors.New("request panicked")

	ErrUnknownCommand      = errors.New("unknown command")
	ErrInvalidOutput       = errors.New("invalid output format")
	ErrInvalidArgs         = errors.New("invalid arguments")
	ErrFailedToStartUI     = errors.New("failed to start UI")
	ErrTelemetryInitFailed = errors.New("failed to initialize telemetry")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)

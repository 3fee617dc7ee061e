package config

import "time"

// app constants
const (
	AppName        = "logview"
	AppDescription = "Terminal viewer for a remote log store"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.3.0"
)

// config file constants
const (
	ConfigFile = "logview.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "LOGVIEW"
)

// server constants
const (
	DefaultServerURL     = "http://localhost:8080"
	DefaultServerTimeout = 10 * time.Second
)

// query constants
const (
	DefaultLimit = 100
)

// polling constants
const (
	DefaultPollInterval = 500 * time.Millisecond
	WatchDebounce       = 300 * time.Millisecond
)

// event constants
const (
	EventBufferSize = 256
)

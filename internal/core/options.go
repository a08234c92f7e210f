package core

import "time"

// Defaults for the dataspace protocol constants and watch behavior.
const (
	DefaultProtocol        = "dataspace-protocol-http:2025-1"
	DefaultTransferType    = "HttpData-PULL"
	DefaultDestinationType = "httpData"
	DefaultMaxWait         = 5 * time.Minute
)

// Options carries the protocol constants and watch tuning shared by the
// pipeline components.
type Options struct {
	Protocol            string
	TransferType        string
	DestinationType     string
	DataPlaneControlURL string
	WatchInterval       time.Duration
	// MaxWait bounds each state watch; zero disables the bound.
	MaxWait time.Duration
	// EDRWaitAttempts bounds credential resolution attempts after a
	// transfer starts. The reference behavior is a single attempt.
	EDRWaitAttempts int
}

func DefaultOptions() Options {
	return Options{
		Protocol:        DefaultProtocol,
		TransferType:    DefaultTransferType,
		DestinationType: DefaultDestinationType,
		WatchInterval:   DefaultWatchInterval,
		MaxWait:         DefaultMaxWait,
		EDRWaitAttempts: 1,
	}
}

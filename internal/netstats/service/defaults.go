package service

import "time"

const (
	defaultRefreshInterval   = 30 * time.Second
	defaultPublishInterval   = 5 * time.Second
	defaultReconnectDelay    = 1 * time.Second
	defaultReconnectMaxDelay = 1 * time.Minute

	blockBatcherFlushSize     = 500
	blockBatcherFlushInterval = 10 * time.Second
	blockBatcherFlushRPS      = 2
	blockBatcherQueueSize     = 10_000
)

package database

import "time"

// RedisConnection definition redis setting
// MasterName + SentinelAddrs select a sentinel failover client, otherwise Addr is dialed directly
type RedisConnection struct {
	Addr          string
	Password      string
	DB            int
	MasterName    string
	SentinelAddrs []string

	RetryCount    int
	RetryInterval time.Duration
}

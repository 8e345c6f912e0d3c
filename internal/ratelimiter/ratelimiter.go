package ratelimiter

import "time"

type Limiter interface {
	// Allow reports whether ip may make another request, and if not, how long to wait.
	Allow(ip string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

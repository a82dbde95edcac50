package constants

import "time"

var CircuitBreakerConfig = struct {
	FailureThreshold    int
	ResetTimeout        time.Duration
	RateLimitTimeout    time.Duration
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
}{
	FailureThreshold:    3,
	ResetTimeout:        30 * time.Second,
	RateLimitTimeout:    1 * time.Hour, // 429s recover on the provider's schedule, not ours
	HealthCheckInterval: 10 * time.Minute,
	HealthCheckTimeout:  10 * time.Second,
}

var AIInputLimits = struct {
	MaxTextLength int
}{
	MaxTextLength: 1000,
}

var AITokenLimits = struct {
	Translate   int
	WarningText int
	SafetyGuide int
}{
	Translate:   1000,
	WarningText: 1000,
	SafetyGuide: 2000,
}

var QuakeConfig = struct {
	DefaultLimit int
	MaxLimit     int
}{
	DefaultLimit: 10,
	MaxLimit:     100,
}

var TsunamiConfig = struct {
	DefaultLimit    int
	MaxLimit        int
	ActiveScanLimit int // bulletins inspected when filtering for active warnings
}{
	DefaultLimit:    10,
	MaxLimit:        50,
	ActiveScanLimit: 20,
}

var VolcanoConfig = struct {
	FetchConcurrency int
}{
	FetchConcurrency: 5,
}

var ShelterConfig = struct {
	DefaultRadiusKM float64
	DefaultLimit    int
	MaxLimit        int
}{
	DefaultRadiusKM: 5.0,
	DefaultLimit:    20,
	MaxLimit:        100,
}

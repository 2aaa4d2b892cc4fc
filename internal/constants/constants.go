package constants

import "time"

var FetchConfig = struct {
	DefaultTimeout time.Duration
	UserAgent      string
	MaxPageBytes   int64
}{
	DefaultTimeout: 12 * time.Second,
	UserAgent:      "Mozilla/5.0 (compatible; PaderewskiBot/1.0)",
	MaxPageBytes:   8 << 20,
}

var PredictionConfig = struct {
	Temperature        float64
	DefaultMaxTokens   int
	FallbackConfidence float64
}{
	Temperature:        0.4,
	DefaultMaxTokens:   1024,
	FallbackConfidence: 0.15, // random pick, no model involved
}

var AIInputLimits = struct {
	MaxQueryLength int
}{
	MaxQueryLength: 500, // runes of a question kept in logs
}

var ServerConfig = struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	BuildTimeout      time.Duration
}{
	ReadHeaderTimeout: 10 * time.Second,
	ShutdownTimeout:   10 * time.Second,
	BuildTimeout:      30 * time.Second,
}

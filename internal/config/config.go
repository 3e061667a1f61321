package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the platform feature flags. Values come from the environment
// so multiple service instances behind a load balancer agree on behavior.
//
// Supported env vars:
//   - REQUIRE_PAYMENT_BEFORE_CONFIRM (default: true)
//   - MAX_CONTRACTOR_OFFERS_PER_JOB (default: 3)
//   - PAYOUT_SHARE_PERCENT (default: 70)
//   - SANDBOX_MODE (default: false)

type Config struct {
	RequirePaymentBeforeConfirm bool
	MaxContractorOffersPerJob   int
	PayoutSharePercent          int64
	SandboxMode                 bool
}

func Load() Config {
	return Config{
		RequirePaymentBeforeConfirm: getenvBool("REQUIRE_PAYMENT_BEFORE_CONFIRM", true),
		MaxContractorOffersPerJob:   getenvInt("MAX_CONTRACTOR_OFFERS_PER_JOB", 3),
		PayoutSharePercent:          int64(getenvInt("PAYOUT_SHARE_PERCENT", 70)),
		SandboxMode:                 getenvBool("SANDBOX_MODE", false),
	}
}

func getenvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

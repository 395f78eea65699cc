package env

import (
	"strings"

	"github.com/bridgeworld/atlas-mine-watcher/common/config"
)

// IsCI returns true if we are in CI mode.
func IsCI() bool {
	ci := config.GetString("CI", "false")
	return ci == "true"
}

// WatchAddresses returns the holder addresses the syncer tracks, lowercased.
func WatchAddresses() []string {
	raw := config.GetString("WATCH_ADDRESSES", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	addresses := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			addresses = append(addresses, part)
		}
	}
	return addresses
}

// Package version reports the flare build version.
//
// Values are set at link time and fall back to the VCS stamp Go embeds:
//
//	go build -ldflags "-X github.com/kbukum/flare/version.Version=1.0.0" ./cmd/flare
package version

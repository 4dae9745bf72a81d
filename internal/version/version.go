// Package version tracks the running binary's version and compares semantic
// version strings.
package version

import (
	"strconv"
	"strings"
)

var current = "dev"

// Set records the binary version, normally injected at build time.
func Set(v string) {
	if v != "" {
		current = v
	}
}

// Current returns the binary version.
func Current() string {
	return current
}

// IsDevelopment reports whether v is an unreleased build.
func IsDevelopment(v string) bool {
	return v == "" || v == "dev" || v == "devel" || strings.HasPrefix(v, "dev-")
}

// IsNewer reports whether candidate is a newer release than running.
// Development builds are never considered older than anything.
func IsNewer(candidate, running string) bool {
	if IsDevelopment(running) {
		return false
	}
	return isNewer(candidate, running)
}

// isNewer compares core versions only; prerelease and build metadata are ignored.
func isNewer(latest, current string) bool {
	l := parseSemver(latest)
	c := parseSemver(current)
	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

// parseSemver extracts major.minor.patch. Missing or non-numeric parts are 0.
func parseSemver(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}

	var out [3]int
	parts := strings.Split(v, ".")
	for i := 0; i < len(out) && i < len(parts); i++ {
		if n, err := strconv.Atoi(parts[i]); err == nil {
			out[i] = n
		}
	}
	return out
}

// Package version exposes the release version embedded at build time.
package version

import (
	_ "embed"
	"strings"
)

// devVersion is reported when the VERSION file is empty.
const devVersion = "dev"

//go:embed VERSION
var versionContent string

// Get returns the current version, with whitespace trimmed
func Get() string {
	return parse(versionContent)
}

func parse(content string) string {
	v := strings.TrimSpace(content)
	if v == "" {
		return devVersion
	}
	return strings.TrimPrefix(v, "v")
}

package cmake

import (
	"bytes"
	"fmt"
	"regexp"

	"golang.org/x/mod/semver"
)

// MinVersion is the oldest CMake release this tool can drive; 3.13
// introduced the -S/-B arguments.
const MinVersion = "3.13"

var versionRE = regexp.MustCompile(`cmake version (\d+(?:\.\d+)+)`)

// Version reports the release of the cmake binary found in PATH.
func Version() (string, error) {
	var buf bytes.Buffer
	if err := Execute("cmake", []string{"--version"}, nil, &buf); err != nil {
		return "", fmt.Errorf("detect cmake: %w", err)
	}
	return parseVersion(buf.String())
}

func parseVersion(out string) (string, error) {
	m := versionRE.FindStringSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("unrecognized cmake version output %q", firstLine(out))
	}
	return m[1], nil
}

// Supported reports whether ver is at least MinVersion.
func Supported(ver string) bool {
	return semver.Compare("v"+ver, "v"+MinVersion) >= 0
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}

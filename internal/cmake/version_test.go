package cmake

import (
	"os/exec"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		out     string
		want    string
		wantErr bool
	}{
		{"cmake version 3.28.3\n\nCMake suite maintained by Kitware.\n", "3.28.3", false},
		{"cmake version 3.13.0", "3.13.0", false},
		{"cmake version 4.0.1-dirty", "4.0.1", false},
		{"not cmake at all", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := parseVersion(tt.out)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseVersion(%q) expected error, got %q", tt.out, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseVersion(%q): %v", tt.out, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseVersion(%q) = %q, want %q", tt.out, got, tt.want)
		}
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		ver  string
		want bool
	}{
		{"3.13", true},
		{"3.13.0", true},
		{"3.28.3", true},
		{"4.0.1", true},
		{"3.12.4", false},
		{"2.8.12", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.ver); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.ver, got, tt.want)
		}
	}
}

func TestVersionDetect(t *testing.T) {
	if _, err := exec.LookPath("cmake"); err != nil {
		t.Skip("cmake not found in PATH")
	}
	ver, err := Version()
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if ver == "" {
		t.Error("Version returned empty string")
	}
}

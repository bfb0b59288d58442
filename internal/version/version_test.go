package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "swatchbook version ") {
		t.Errorf("String() = %q, want swatchbook prefix", s)
	}
	if !strings.Contains(s, GoVersion) {
		t.Errorf("String() = %q, want Go version %q", s, GoVersion)
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version {
		t.Errorf("GetInfo().Version = %q, want %q", info.Version, Version)
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo().Platform = %q, want os/arch", info.Platform)
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortCommit() = %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("shortCommit() = %q", got)
	}
}

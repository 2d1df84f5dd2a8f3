package compileinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	z := &debug.BuildInfo{
		GoVersion: "go1.18",
		Path:      "github.com/carbocation/spectra/cmd/spectrasim",
		Main:      debug.Module{Path: "github.com/carbocation/spectra", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2022-01-01T00:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	c := fromBuildInfo(z)
	if c.Commit != "abc123" || !c.Modified {
		t.Fatalf("Unexpected compile info %+v", c)
	}

	s := c.String()
	for _, want := range []string{"spectrasim", "go1.18", "abc123", "uncommitted"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %q in %q", want, s)
		}
	}
}

func TestStringWithoutVCS(t *testing.T) {
	s := CompileInfo{Command: "spectrasim", GoVersion: "go1.18"}.String()
	if s != "spectrasim built with go1.18" {
		t.Errorf("Unexpected %q", s)
	}
}

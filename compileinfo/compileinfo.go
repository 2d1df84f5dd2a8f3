// Package compileinfo reports how a spectra command was built, from the build
// information embedded by the Go toolchain.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
)

type CompileInfo struct {
	Command    string
	Module     string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", c.Command)
	if c.Module != "" {
		fmt.Fprintf(&b, " (%s %s)", c.Module, c.Version)
	}
	fmt.Fprintf(&b, " built with %s", c.GoVersion)
	if c.Commit != "" {
		fmt.Fprintf(&b, " at commit %s (%s)", c.Commit, c.CommitTime)
	}
	if c.Modified {
		b.WriteString(", with uncommitted changes")
	}

	return b.String()
}

// Get returns the build information of the running binary. Fields are empty
// when the binary carries none.
func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		Command:   z.Path,
		Module:    z.Main.Path,
		Version:   z.Main.Version,
		GoVersion: z.GoVersion,
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Fprint(w io.Writer) {
	fmt.Fprintln(w, Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}

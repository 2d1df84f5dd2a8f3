// Package compileinfoprint prints the build information of the importing
// command to stderr at startup. Import it for its side effect only.
package compileinfoprint

import "github.com/carbocation/spectra/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}

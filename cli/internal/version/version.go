package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// fallback is used when the binary carries no module version, e.g. in tests.
const fallback = "0.0.0-dev"

type Info struct {
	Major      string `json:"major"`
	Minor      string `json:"minor"`
	Patch      string `json:"patch"`
	PreRelease string `json:"prerelease,omitempty"`
	Meta       string `json:"meta,omitempty"`
	GitVersion string `json:"gitVersion"`
	GoVersion  string `json:"goVersion"`
	Compiler   string `json:"compiler"`
	Platform   string `json:"platform"`
}

// Get returns the version of the running binary. override replaces the module
// version from the build info if it is not empty, it is typically set through -ldflags.
func Get(override string) (Info, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, fmt.Errorf("could not read build info")
	}
	return FromBuildInfo(bi, override)
}

// FromBuildInfo derives the version information from bi.
func FromBuildInfo(bi *debug.BuildInfo, override string) (Info, error) {
	raw := bi.Main.Version
	if override != "" {
		raw = override
	}
	if raw == "" || raw == "(devel)" {
		raw = fallback
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return Info{}, fmt.Errorf("could not parse version %q: %w", raw, err)
	}

	return Info{
		Major:      strconv.FormatUint(v.Major(), 10),
		Minor:      strconv.FormatUint(v.Minor(), 10),
		Patch:      strconv.FormatUint(v.Patch(), 10),
		PreRelease: v.Prerelease(),
		Meta:       strings.TrimPrefix(v.Metadata(), "+"),
		GitVersion: v.String(),
		GoVersion:  bi.GoVersion,
		Compiler:   runtime.Compiler,
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}, nil
}

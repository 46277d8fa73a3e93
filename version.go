// Package bland holds the release metadata of the bland editor. The editor
// itself lives in the document, editor and export packages.
package bland

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// buildVersion overrides VERSION when set with
// -ldflags "-X github.com/iw2rmb/bland.buildVersion=1.2.3".
var buildVersion string

// Version returns the release version without the leading "v".
func Version() string {
	if v := strings.TrimPrefix(strings.TrimSpace(buildVersion), "v"); v != "" {
		return v
	}
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag ("v0.1.0").
func VersionTag() string {
	return "v" + Version()
}

// Revision returns the short VCS revision the binary was built from, with a
// "-dirty" suffix for modified trees. It is empty outside a VCS build.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return revisionFrom(info.Settings)
}

func revisionFrom(settings []debug.BuildSetting) string {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}

// UserVersion is the line printed by `bland version`.
func UserVersion() string {
	if rev := Revision(); rev != "" {
		return "bland " + VersionTag() + " (" + rev + ")"
	}
	return "bland " + VersionTag()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

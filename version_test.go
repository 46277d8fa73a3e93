package bland

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestVersion_EmbeddedIsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersion_BuildOverride(t *testing.T) {
	old := buildVersion
	t.Cleanup(func() { buildVersion = old })

	buildVersion = "v2.3.4"
	if got := Version(); got != "2.3.4" {
		t.Fatalf("Version()=%q, want 2.3.4", got)
	}
	if got := VersionTag(); got != "v2.3.4" {
		t.Fatalf("VersionTag()=%q, want v2.3.4", got)
	}
}

func TestRevisionFrom(t *testing.T) {
	cases := []struct {
		settings []debug.BuildSetting
		want     string
	}{
		{want: ""},
		{
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			want:     "0123456789ab",
		},
		{
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "abc-dirty",
		},
		{
			settings: []debug.BuildSetting{{Key: "vcs.modified", Value: "true"}},
			want:     "",
		},
	}
	for _, tc := range cases {
		if got := revisionFrom(tc.settings); got != tc.want {
			t.Fatalf("revisionFrom(%v)=%q, want %q", tc.settings, got, tc.want)
		}
	}
}

func TestUserVersion(t *testing.T) {
	if got := UserVersion(); !strings.HasPrefix(got, "bland v"+Version()) {
		t.Fatalf("UserVersion()=%q", got)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-alpha.1", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "01.2.3", want: false},
	}

	for _, tc := range cases {
		got := IsSemver(tc.version)
		if got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}

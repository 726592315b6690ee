package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func saveVars(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestResolveFillsDefaults(t *testing.T) {
	saveVars(t)
	Version, Commit, Date = "dev", "none", "unknown"

	resolve(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
		},
	})

	if Version != "v0.3.1" || Commit != "0123456789abcdef" || Date != "2025-01-02T03:04:05Z" {
		t.Errorf("resolve() = %s", String())
	}
	if got := Short(); got != "v0.3.1 (0123456)" {
		t.Errorf("Short() = %q", got)
	}
}

func TestResolveKeepsLdflags(t *testing.T) {
	saveVars(t)
	Version, Commit, Date = "v1.0.0", "abc", "today"

	resolve(&debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "zzz"}},
	})

	if Version != "v1.0.0" || Commit != "abc" || Date != "today" {
		t.Errorf("resolve() overwrote ldflags values: %s", String())
	}
}

func TestResolveIgnoresDevelVersion(t *testing.T) {
	saveVars(t)
	Version, Commit = "dev", "none"

	resolve(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" || Short() != "dev" {
		t.Errorf("Version = %q, Short() = %q", Version, Short())
	}
}

func TestTemplate(t *testing.T) {
	saveVars(t)
	Version, Commit, Date = "v1.2.3", "abc", "2025-12-20"

	tmpl := Template()
	for _, want := range []string{"{{.Name}} version v1.2.3", "commit: abc", "built: 2025-12-20"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() missing %q: %q", want, tmpl)
		}
	}
}

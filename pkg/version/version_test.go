package version

import (
	"strings"
	"testing"
)

func TestInfoContainsFields(t *testing.T) {
	info := Info()
	for _, field := range []string{Version, Commit, BuildDate} {
		if !strings.Contains(info, field) {
			t.Fatalf("Info() = %q missing %q", info, field)
		}
	}
}

func TestGet(t *testing.T) {
	got := Get()
	if got.Version != Version || got.Commit != Commit || got.BuildDate != BuildDate {
		t.Fatalf("Get() = %+v", got)
	}
}

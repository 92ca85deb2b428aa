package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/changed/internal/build"
)

func TestString(t *testing.T) {
	version, commit, date := build.Version, build.Commit, build.Date
	t.Cleanup(func() {
		build.Version, build.Commit, build.Date = version, commit, date
	})

	build.Version = "v1.2.3"
	build.Commit = "abc1234"
	build.Date = "2026-01-02"

	assert.Equal(t, "v1.2.3", build.ResolvedVersion())
	assert.Equal(t, "v1.2.3 (commit: abc1234, date: 2026-01-02)", build.String())
}

package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/changed/internal/adapters/fs"
	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("exit 0\n"), domain.PrivateFilePerm))
}

// layout creates:
//
//	scenarios/
//	  .hidden/skipped.sh
//	  .skipped.sh
//	  auth/login.sh
//	  auth/notes.txt
//	  checkout.sh
func layout(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, rel := range []string{
		"scenarios/.hidden/skipped.sh",
		"scenarios/.skipped.sh",
		"scenarios/auth/login.sh",
		"scenarios/auth/notes.txt",
		"scenarios/checkout.sh",
	} {
		writeFile(t, filepath.Join(dir, filepath.FromSlash(rel)))
	}
	return dir
}

func TestWalker_WalkFiles(t *testing.T) {
	dir := layout(t)
	root := filepath.Join(dir, "scenarios")

	var got []string
	for path, err := range fs.NewWalker().WalkFiles(root, "*") {
		require.NoError(t, err)
		rel, relErr := filepath.Rel(root, path)
		require.NoError(t, relErr)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"auth/login.sh", "auth/notes.txt", "checkout.sh"}, got)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	dir := layout(t)

	count := 0
	for range fs.NewWalker().WalkFiles(filepath.Join(dir, "scenarios"), "*") {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_WalkFiles_BadPattern(t *testing.T) {
	dir := layout(t)

	var errs []error
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(dir, "scenarios"), "[") {
		if err != nil {
			errs = append(errs, err)
		}
	}
	assert.Len(t, errs, 1)
}

func TestFinder_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	dir := layout(t)
	cfg := domain.DefaultProjectConfig(dir)
	cfg.Pattern = "*.sh"

	scenarios, err := fs.NewFinder(fs.NewWalker(), mockLogger).Find(cfg)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, filepath.Join(dir, "scenarios", "auth", "login.sh"), scenarios[0].Path)
	assert.Equal(t, "scenarios/auth/login.sh", scenarios[0].Rel)
	assert.Equal(t, domain.ScenarioID("scenarios/auth/login.sh"), scenarios[0].ID)
	assert.Equal(t, "scenarios/checkout.sh", scenarios[1].Rel)

	paths := []string{scenarios[0].Path, scenarios[1].Path}
	assert.True(t, slices.IsSorted(paths))
}

func TestFinder_Find_MissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	scenarios, err := fs.NewFinder(fs.NewWalker(), mockLogger).Find(domain.DefaultProjectConfig(t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, scenarios)
}

func TestFinder_Find_NotADirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "scenarios"))

	_, err := fs.NewFinder(fs.NewWalker(), mockLogger).Find(domain.DefaultProjectConfig(dir))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScenarioDiscoveryFailed)
}

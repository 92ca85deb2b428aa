package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-project state directory.
	StateDirName = ".changed"

	// LocalStorageDirName is the name of the local storage directory.
	LocalStorageDirName = "local_storage"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "changed.yaml"

	// DefaultScenariosDir is the directory holding scenario files, relative to the project.
	DefaultScenariosDir = "scenarios"

	// DefaultPattern matches every scenario file name.
	DefaultPattern = "*"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultRunner is the command prefix used to execute a scenario file.
func DefaultRunner() []string {
	return []string{"sh"}
}

// DefaultStatePath returns the default root directory for changed metadata.
func DefaultStatePath() string {
	return StateDirName
}

// DefaultLocalStoragePath returns the default path for plugin local storage.
// It joins .changed and local_storage.
func DefaultLocalStoragePath() string {
	return filepath.Join(StateDirName, LocalStorageDirName)
}

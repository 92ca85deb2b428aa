package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidConfiguration is the kind of every invalid or conflicting CLI option.
	ErrInvalidConfiguration = zerr.New("invalid configuration")

	// ErrRepositoryNotFound is the kind returned when no git repository contains the working directory.
	ErrRepositoryNotFound = zerr.New("git repository not found")

	// ErrFetchFailed is the kind returned when 'git fetch' fails.
	ErrFetchFailed = zerr.New("git fetch failed")

	// ErrDiffFailed is the kind returned when 'git diff' fails.
	ErrDiffFailed = zerr.New("git diff failed")

	// ErrStorageUnavailable is returned when a plugin needs local storage before the project config is loaded.
	ErrStorageUnavailable = zerr.New("local storage is not initialized")

	// ErrStorageReadFailed is returned when the local storage file cannot be read.
	ErrStorageReadFailed = zerr.New("failed to read local storage")

	// ErrStorageUnmarshalFailed is returned when the local storage content cannot be decoded.
	ErrStorageUnmarshalFailed = zerr.New("failed to unmarshal local storage")

	// ErrStorageMarshalFailed is returned when a value cannot be encoded for local storage.
	ErrStorageMarshalFailed = zerr.New("failed to marshal local storage value")

	// ErrStorageWriteFailed is returned when the local storage file cannot be written.
	ErrStorageWriteFailed = zerr.New("failed to write local storage")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidPattern is returned when the scenario file pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid scenario pattern")

	// ErrInvalidScenariosDir is returned when the scenarios directory escapes the project directory.
	ErrInvalidScenariosDir = zerr.New("scenarios directory must be inside the project directory")

	// ErrInvalidParallelism is returned when parallelism is negative.
	ErrInvalidParallelism = zerr.New("parallelism must be non-negative")

	// ErrEmptyRunner is returned when the runner command is explicitly set to an empty list.
	ErrEmptyRunner = zerr.New("runner command must not be empty")

	// ErrScenarioDiscoveryFailed is returned when walking the scenarios directory fails.
	ErrScenarioDiscoveryFailed = zerr.New("failed to discover scenarios")

	// ErrScenarioExecutionFailed is returned when a single scenario exits unsuccessfully.
	ErrScenarioExecutionFailed = zerr.New("scenario execution failed")

	// ErrScenariosFailed is returned when at least one scheduled scenario failed.
	ErrScenariosFailed = zerr.New("one or more scenarios failed")

	// ErrFailedToGetWorkingDir is returned when the working directory cannot be determined.
	ErrFailedToGetWorkingDir = zerr.New("failed to get working directory")

	// ErrFlagLookupFailed is returned when a registered flag cannot be read back after parsing.
	ErrFlagLookupFailed = zerr.New("failed to read flag value")
)

// Error is a user-facing failure with an actionable message.
// Kind is one of the Err* sentinels above and is matched by errors.Is.
type Error struct {
	Kind    error
	message string
	cause   error
}

// NewError creates an Error of the given kind.
func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, message: message, cause: cause}
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	return e.message
}

// Message returns the message without the cause chain.
func (e *Error) Message() string {
	return e.message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && errors.Is(e.Kind, target)
}

// NegativeCacheDurationError is returned for a negative --changed-fetch-cache value.
func NegativeCacheDurationError(value int) *Error {
	return NewError(ErrInvalidConfiguration,
		"Cache duration must be non-negative. "+
			"Please provide a valid value for '--changed-fetch-cache'.",
		zerr.With(zerr.New("negative cache duration"), "value", value))
}

// ConflictingFetchOptionsError is returned when --changed-no-fetch is combined with a custom cache duration.
func ConflictingFetchOptionsError() *Error {
	return NewError(ErrInvalidConfiguration,
		"The options '--changed-no-fetch' and '--changed-fetch-cache' "+
			"cannot be used together. Please choose one.",
		nil)
}

// RepositoryNotFoundError is returned when repository discovery fails.
func RepositoryNotFoundError(cause error) *Error {
	return NewError(ErrRepositoryNotFound,
		"Unable to find a git repository in the current or any parent directories. "+
			"Ensure you are in a directory that is part of a valid git repository.",
		cause)
}

// FetchFailedError is returned when 'git fetch' fails.
func FetchFailedError(cause error) *Error {
	return NewError(ErrFetchFailed,
		"An error occurred during 'git fetch'. This may be due to network issues, "+
			"authentication problems, or inaccessible repository. Verify your remote "+
			"settings and network connectivity.",
		cause)
}

// DiffFailedError is returned when 'git diff' against the branch fails.
func DiffFailedError(branch string, cause error) *Error {
	return NewError(ErrDiffFailed,
		fmt.Sprintf("Failed to retrieve the file differences from the git repository for the branch '%s'. "+
			"Please ensure that the branch name is correct and exists.", branch),
		cause)
}

package registry

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrProjectPath indicates the project path is unset or does not exist.
	ErrProjectPath = errors.New("project path not set or does not exist")

	// ErrAssetsMissing indicates the project exists but has no Assets folder.
	ErrAssetsMissing = errors.New("Assets folder not found")

	// ErrUnknownType indicates a module type filter outside the recognized set.
	ErrUnknownType = errors.New("unknown module type")

	// ErrSaveRegistry indicates an I/O failure while persisting the registry.
	ErrSaveRegistry = errors.New("failed to save registry")
)

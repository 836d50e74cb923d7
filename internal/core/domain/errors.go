package domain

import "go.trai.ch/zerr"

var (
	// ErrNoInputs is returned when a collection run is started without any binary or directory.
	ErrNoInputs = zerr.New("no binaries or directories specified")

	// ErrStagingFailed is returned when a dependency could not be copied into the staging root.
	ErrStagingFailed = zerr.New("failed to stage dependency")

	// ErrManifestWriteFailed is returned when the manifest could not be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestNotFound is returned when a staging root contains no manifest.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrInvalidManifest is returned when a manifest does not have the expected shape.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrBundleIncomplete is returned when staged files are missing or differ from their sources.
	ErrBundleIncomplete = zerr.New("staged bundle is incomplete")

	// ErrInvalidConfig is returned when the configuration file contains unusable values.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

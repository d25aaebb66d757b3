package common

const (
	// Compression constants
	CompressedSuffix    = "_compressed"
	MaxConcurrencyLimit = 8

	// File operation constants
	DefaultFilePermissions = 0755
)

package qpath

import "io/fs"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Operation completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitNotFound         = 20 // Path or segment does not exist
	ExitPermissionDenied = 21 // Backend refused access
	ExitAlreadyExists    = 22 // Creation target exists and is not a directory
	ExitIOFailure        = 23 // Any other filesystem failure
)

// DefaultDirMode is the permission mode Mkdirp uses when none is given.
// The process umask still applies on the OS backend.
const DefaultDirMode fs.FileMode = 0o777

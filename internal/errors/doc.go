// Package errors provides error handling conventions for claudecfg.
//
// This package defines the error kinds surfaced by the configuration core,
// sentinel errors for common failure conditions, and an ExitError type for
// CLI exit code handling.
//
// # Error kinds
//
// The core distinguishes the following caller-visible categories:
//
//   - ErrNotFound: a referenced file does not exist where existence was required
//   - FormatError: malformed JSON or a structurally wrong document, with
//     line/column when the parser can provide them
//   - ValidationError: a named rule rejected the document, with a remediation
//     suggestion
//   - FilesystemError: an I/O failure, with the attempted operation and path
//   - ErrBackupFailed: backup creation failed inside the atomic write path,
//     aborting the write to protect existing data
//   - ErrInvalidBackupName: a restore target does not match the backup naming
//     convention
//   - ErrUnsupportedPath: a key-path mutation targets an unsupported shape
//
// All of these are recoverable. Nothing in the core panics on bad input; the
// only deliberate abort is the backup-failure guard in the write path.
//
// # Checking errors
//
// Sentinels work with [Is]:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle missing file
//	}
//
// Structured kinds work with [As]:
//
//	var verr *errors.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Println("Suggestion:", verr.Suggestion)
//	}
//
// Wrapping helpers (Wrap, Wrapf, Newf) are re-exported from
// github.com/cockroachdb/errors so the rest of the module imports a single
// errors package.
package errors

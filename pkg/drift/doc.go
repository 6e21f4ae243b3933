// Package drift classifies the symlink state of a dotfiles package by
// running GNU stow in simulation mode and reading the link operations it
// would perform.
//
// Classification precedence for a package:
//
//  1. A target containing an unresolved variable is a configuration
//     error; stow is not run.
//  2. A missing or empty source directory is Missing, whatever stow says.
//  3. stow reporting that the package does not exist is Missing.
//  4. Any simulated link operation is WouldChange.
//  5. A clean exit with no operations is InSync.
//  6. Anything else (conflicts, usage errors) is a SUBPROCESS_FAILED error.
package drift

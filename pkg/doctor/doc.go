// Package doctor builds the check plan from the configuration and the
// manifests, and runs it on a bounded worker pool.
//
// The plan is ordered by category (manifest, symlinks, versions, build,
// permissions, links, lint) and, within a category, by declaration order.
// Run returns exactly one outcome per planned check, in plan order.
package doctor

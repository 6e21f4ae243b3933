// Package types defines the value types shared across dotdoctor: the
// declarations read from manifests (PackageDeclaration, VersionRequirement),
// the per-domain results (DriftState, VersionCheckResult), and the uniform
// CheckOutcome every check normalizes into before aggregation.
//
// All of these are invocation-scoped values. Nothing here is persisted and
// nothing outlives a single run.
package types

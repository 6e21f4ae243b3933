package types

// PackageDeclaration is one package of symlinked configuration declared in
// the package manifest
type PackageDeclaration struct {
	Name string
	// TargetPath is where the package is linked into. Variable references
	// are already expanded; unresolved ones are kept verbatim.
	TargetPath string
	// Line is the manifest line the declaration was last read from
	Line int
}

// VersionRequirement is a minimum tool version declared in the version manifest
type VersionRequirement struct {
	// Tool is the executable name derived from Key
	Tool string
	// Key is the manifest key as written, e.g. NODE_VERSION
	Key      string
	Required string
	Line     int
}

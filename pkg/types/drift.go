package types

// DriftKind tags a DriftState
type DriftKind int

const (
	DriftInSync DriftKind = iota
	DriftWouldChange
	DriftMissing
)

func (k DriftKind) String() string {
	switch k {
	case DriftInSync:
		return "in-sync"
	case DriftWouldChange:
		return "would-change"
	case DriftMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// LinkAction is the intent of a simulated link operation
type LinkAction int

const (
	LinkActionLink LinkAction = iota
	LinkActionUnlink
)

func (a LinkAction) String() string {
	if a == LinkActionUnlink {
		return "unlink"
	}
	return "link"
}

// LinkOp is one link change the symlink manager would perform
type LinkOp struct {
	Action LinkAction
	Path   string
}

// DriftState is the classification of a single package.
// Kind is DriftInSync iff Links is empty and the simulation succeeded.
type DriftState struct {
	Kind  DriftKind
	Links []LinkOp
	// Reason explains a DriftMissing classification
	Reason string
}

// InSync returns the in-sync drift state
func InSync() DriftState { return DriftState{Kind: DriftInSync} }

// WouldChange returns a drift state carrying the pending link changes
func WouldChange(links []LinkOp) DriftState {
	return DriftState{Kind: DriftWouldChange, Links: links}
}

// Missing returns a drift state for a package whose source is absent
func Missing(reason string) DriftState {
	return DriftState{Kind: DriftMissing, Reason: reason}
}

package types

// DependencySpec is one entry of a dependencies block: a package name
// and the raw range expression requested for it.
type DependencySpec struct {
	Name  string
	Range string
}

// LockEntry is the typed record form of one top-level lock-file block.
// Key is the raw request-list key exactly as it appears in the file,
// possibly naming several version requests for the same package.
type LockEntry struct {
	Key          string
	Version      string
	Resolved     string
	Integrity    string
	Dependencies []DependencySpec
}

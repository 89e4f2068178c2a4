package ports

// RangePort answers whether a concrete version satisfies a range
// expression. Implementations never fail: an identical string always
// matches, an empty range matches every version, and input the engine
// cannot parse simply matches nothing.
type RangePort interface {
	Satisfies(version string, rangeExpr string) bool
}

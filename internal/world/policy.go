package world

import "fmt"

// UnmatchedPolicy decides what Build does with a pixel that matches no tile.
type UnmatchedPolicy int

const (
	// UnmatchedFail scans the whole image, then fails with an UnmatchedError.
	UnmatchedFail UnmatchedPolicy = iota
	// UnmatchedDefault stores BuildOptions.Default and records the pixel in Grid.Unmatched.
	UnmatchedDefault
)

// String returns a human-readable policy name.
func (p UnmatchedPolicy) String() string {
	switch p {
	case UnmatchedFail:
		return "fail"
	case UnmatchedDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ParseUnmatchedPolicy parses the names produced by String.
func ParseUnmatchedPolicy(s string) (UnmatchedPolicy, error) {
	switch s {
	case "fail", "":
		return UnmatchedFail, nil
	case "default":
		return UnmatchedDefault, nil
	default:
		return UnmatchedFail, fmt.Errorf("unknown unmatched policy %q", s)
	}
}

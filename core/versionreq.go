package core

import (
	"errors"
	"strings"

	semver "github.com/Masterminds/semver/v3"
)

// VersionReq is a validated semver range, such as ">=1.2, <2" or "~0.9".
// The zero value matches nothing.
type VersionReq struct {
	constraints *semver.Constraints
}

// ParseVersionReq parses a semver range expression
func ParseVersionReq(text string) (VersionReq, error) {
	if strings.TrimSpace(text) == "" {
		return VersionReq{}, &ConstraintSyntaxError{Text: text, Err: errors.New("empty range expression")}
	}
	c, err := semver.NewConstraint(text)
	if err != nil {
		return VersionReq{}, &ConstraintSyntaxError{Text: text, Err: err}
	}
	return VersionReq{constraints: c}, nil
}

// MustParseVersionReq is like ParseVersionReq but panics if the range is invalid
func MustParseVersionReq(text string) VersionReq {
	req, err := ParseVersionReq(text)
	if err != nil {
		panic(err)
	}
	return req
}

// Check reports whether v satisfies the range
func (r VersionReq) Check(v *semver.Version) bool {
	if r.constraints == nil || v == nil {
		return false
	}
	return r.constraints.Check(v)
}

// Equal compares two ranges by their canonical text
func (r VersionReq) Equal(other VersionReq) bool {
	return r.String() == other.String()
}

func (r VersionReq) String() string {
	if r.constraints == nil {
		return ""
	}
	return r.constraints.String()
}

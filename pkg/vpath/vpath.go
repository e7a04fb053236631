package vpath

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Root is the virtual root directory.
const Root = "/"

var (
	// ErrEscape is returned when a path would resolve outside the sandbox root.
	ErrEscape = errors.New("path escapes sandbox root")

	// ErrRootUnset is returned when no absolute sandbox root has been established.
	// It matches ErrEscape under errors.Is so callers can treat both alike.
	ErrRootUnset = fmt.Errorf("%w: sandbox root not set", ErrEscape)
)

// Policy selects how ".." segments above the virtual root are handled.
type Policy int

const (
	// Clamp silently stops ".." at the virtual root.
	Clamp Policy = iota
	// Reject reports ErrEscape for any ".." above the virtual root.
	Reject
)

func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses "clamp" or "reject". The empty string means Clamp.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return Clamp, nil
	case "reject":
		return Reject, nil
	default:
		return Clamp, fmt.Errorf("unknown escape policy %q (want clamp or reject)", s)
	}
}

// Normalize converts raw into a canonical virtual path. Absolute paths start from
// the virtual root, relative ones from cwd. The result always starts with "/".
func Normalize(raw, cwd string) string {
	return path.Clean(Root + join(raw, cwd))
}

// NormalizeStrict is Normalize under the Reject policy.
func NormalizeStrict(raw, cwd string) (string, error) {
	joined := join(raw, cwd)
	depth := 0
	for _, seg := range strings.Split(joined, "/") {
		switch seg {
		case "", ".":
		case "..":
			if depth == 0 {
				return "", fmt.Errorf("%w: %q", ErrEscape, raw)
			}
			depth--
		default:
			depth++
		}
	}
	return path.Clean(Root + joined), nil
}

// Resolve normalizes raw against cwd according to the policy.
func Resolve(raw, cwd string, p Policy) (string, error) {
	if p == Reject {
		return NormalizeStrict(raw, cwd)
	}
	return Normalize(raw, cwd), nil
}

func join(raw, cwd string) string {
	if strings.HasPrefix(raw, "/") {
		return raw
	}
	if cwd == "" {
		cwd = Root
	}
	return cwd + "/" + raw
}

// ResolveReal maps a virtual path onto root and returns the host path. The result
// is always root or a descendant of root; anything else yields ErrEscape.
func ResolveReal(virtual, root string) (string, error) {
	if root == "" || !filepath.IsAbs(root) {
		return "", ErrRootUnset
	}
	root = filepath.Clean(root)

	rel := filepath.FromSlash(strings.TrimLeft(virtual, "/"))
	hostPath := filepath.Join(root, rel)
	if !Within(root, hostPath) {
		return "", fmt.Errorf("%w: %q", ErrEscape, virtual)
	}
	return hostPath, nil
}

// Within reports whether candidate is root or lies below it. The comparison is
// made on whole path components, so "/srv/root2" is not within "/srv/root".
func Within(root, candidate string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(candidate))
	if err != nil {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}

package values

import (
	"fmt"
	"net/url"
	"strings"
)

// NetworkID uniquely identifies a network within the directory.
// Enforces non-empty, trimmed identifiers.
type NetworkID struct {
	value string
}

// NewNetworkID creates a new NetworkID with validation
func NewNetworkID(id string) (NetworkID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return NetworkID{}, fmt.Errorf("network ID cannot be empty")
	}
	if strings.Contains(id, "/") {
		return NetworkID{}, fmt.Errorf("network ID %q must not contain '/'", id)
	}
	return NetworkID{value: id}, nil
}

// MustNewNetworkID creates a NetworkID or panics (for tests/constants)
func MustNewNetworkID(id string) NetworkID {
	nid, err := NewNetworkID(id)
	if err != nil {
		panic(err)
	}
	return nid
}

// NetworkIDFromPath extracts the trailing segment of a route path such as
// "/network/n-001". Query strings, fragments and trailing slashes are ignored.
// A bare identifier is accepted as its own path.
func NetworkIDFromPath(path string) (NetworkID, error) {
	return NewNetworkID(LastPathSegment(path))
}

// routeRoots are the entity listing routes of the directory. A path that
// stops at one of them ("/network/") names no entity.
var routeRoots = map[string]bool{"network": true, "biobank": true, "collection": true}

// LastPathSegment returns the trailing segment of path, or "" when there is
// none. A bare route root such as "/network/" has no trailing segment.
func LastPathSegment(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(strings.TrimSpace(path), "/")
	if strings.HasPrefix(path, "/") && routeRoots[strings.TrimPrefix(path, "/")] {
		return ""
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		return unescaped
	}
	return path
}

// String returns the string representation
func (n NetworkID) String() string {
	return n.value
}

// IsEmpty returns true if this is the zero value
func (n NetworkID) IsEmpty() bool {
	return n.value == ""
}

// Equals checks if two NetworkIDs are equal
func (n NetworkID) Equals(other NetworkID) bool {
	return n.value == other.value
}

// MarshalText implements encoding.TextMarshaler
func (n NetworkID) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (n *NetworkID) UnmarshalText(data []byte) error {
	id, err := NewNetworkID(string(data))
	if err != nil {
		return err
	}
	*n = id
	return nil
}

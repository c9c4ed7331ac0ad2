package values

import (
	"fmt"
	"strings"
)

// DisplayType is the rendering hint attached to a derived display value.
type DisplayType string

const (
	DisplayEmail   DisplayType = "email"
	DisplayBoolean DisplayType = "boolean"
	DisplayString  DisplayType = "string"
	DisplayURL     DisplayType = "url"
	DisplayText    DisplayType = "text"
)

// ParseDisplayType converts a string into a DisplayType.
func ParseDisplayType(s string) (DisplayType, error) {
	switch dt := DisplayType(strings.ToLower(strings.TrimSpace(s))); dt {
	case DisplayEmail, DisplayBoolean, DisplayString, DisplayURL, DisplayText:
		return dt, nil
	default:
		return "", fmt.Errorf("invalid display type: %s", s)
	}
}

// String returns the string representation
func (d DisplayType) String() string {
	return string(d)
}

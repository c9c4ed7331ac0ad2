package components

import (
	"fmt"

	"github.com/biobank-directory/dirview/internal/application/dto"
	"github.com/biobank-directory/dirview/internal/domain/values"
)

// DerivedField pairs a display value with a rendering hint.
type DerivedField struct {
	Value any                `json:"value"`
	Type  values.DisplayType `json:"type"`
}

// String formats the value for plain text output.
func (f DerivedField) String() string {
	switch v := f.Value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// LabeledField is a DerivedField under a human readable label.
type LabeledField struct {
	Label string
	DerivedField
}

// Fields is an ordered label to field mapping.
type Fields []LabeledField

// Get looks up a field by label.
func (fs Fields) Get(label string) (DerivedField, bool) {
	for _, f := range fs {
		if f.Label == label {
			return f.DerivedField, true
		}
	}
	return DerivedField{}, false
}

// Labels returns the labels in order.
func (fs Fields) Labels() []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Label)
	}
	return out
}

func (fs Fields) toDTO() []dto.Field {
	out := make([]dto.Field, 0, len(fs))
	for _, f := range fs {
		out = append(out, dto.Field{Label: f.Label, Value: f.Value, Type: f.Type.String()})
	}
	return out
}

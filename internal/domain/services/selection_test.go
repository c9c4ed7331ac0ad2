package services

import (
	"testing"

	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func Test_Selection_Check(t *testing.T) {
	tests := []struct {
		name      string
		selection []string
		id        string
		expected  []string
	}{
		{"append to empty", nil, "1", []string{"1"}},
		{"append keeps order", []string{"1"}, "2", []string{"1", "2"}},
		{"append after later id", []string{"3", "1"}, "2", []string{"3", "1", "2"}},
		{"already selected", []string{"1", "2"}, "1", []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Check(tt.selection, tt.id))
		})
	}
}

func Test_Selection_Uncheck(t *testing.T) {
	tests := []struct {
		name      string
		selection []string
		id        string
		expected  []string
	}{
		{"remove only", []string{"1"}, "1", []string{}},
		{"remove middle", []string{"1", "2", "3"}, "2", []string{"1", "3"}},
		{"remove absent", []string{"1"}, "9", []string{"1"}},
		{"remove duplicates", []string{"1", "2", "1"}, "1", []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Uncheck(tt.selection, tt.id))
		})
	}
}

func Test_Selection_DoesNotMutateInput(t *testing.T) {
	selection := make([]string, 1, 4)
	selection[0] = "1"

	checked := Check(selection, "2")
	checked[0] = "changed"
	_ = Uncheck(selection, "1")
	_ = SetChecked(selection, "3", true)

	assert.Equal(t, []string{"1"}, selection)
	assert.Equal(t, []string{"1"}, selection[:1:1])
	assert.Equal(t, "", selection[:2][1], "backing array must stay untouched")
}

func Test_Selection_ToggleAll(t *testing.T) {
	options := []entities.Option{{ID: "1", Label: "option 1"}, {ID: "2", Label: "option 2"}}

	assert.Equal(t, []string{"1", "2"}, ToggleAll(nil, options))
	assert.Equal(t, []string{"1", "2"}, ToggleAll([]string{}, options))
	assert.Equal(t, []string{}, ToggleAll([]string{"1"}, options))
	assert.Equal(t, []string{}, ToggleAll([]string{"1", "2"}, options))
	assert.Equal(t, []string{}, ToggleAll(nil, nil))
}

func Test_Selection_SelectAllDeduplicates(t *testing.T) {
	options := []entities.Option{{ID: "a"}, {ID: "b"}, {ID: "a"}}
	assert.Equal(t, []string{"a", "b"}, SelectAll(options))
}

func Test_Selection_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"1", "2"}, "2"))
	assert.False(t, Contains([]string{"1", "2"}, "3"))
	assert.False(t, Contains(nil, "1"))
}

// Package components implements the directory's view components: the
// checkbox filter group and the network report card.
//
// Components never own authoritative data. They render from the props or
// source they are given, keep only local display state, and propose changes
// through callbacks.
package components

import (
	"fmt"
	"slices"

	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/domain/services"
	"github.com/biobank-directory/dirview/internal/ui/view"
)

// InputHandler receives the full next selection proposed by a filter group.
type InputHandler func(selection []string)

// CheckboxFiltersProps configure a CheckboxFilters group.
//
// MaxVisibleOptions is taken literally: zero or negative values slice the
// list down to nothing. Start from DefaultCheckboxFiltersProps to get the
// default threshold.
type CheckboxFiltersProps struct {
	Name               string
	Label              string
	Options            []entities.Option
	Value              []string
	MaxVisibleOptions  int
	InitiallyCollapsed bool
}

// DefaultCheckboxFiltersProps returns props with the default threshold.
func DefaultCheckboxFiltersProps() CheckboxFiltersProps {
	return CheckboxFiltersProps{MaxVisibleOptions: services.DefaultMaxVisibleOptions}
}

// CheckboxFilters is a labeled group of checkable options shown over a
// bounded window. The selection (Value) belongs to the owner: the group only
// reads it and emits the next selection through its InputHandler.
type CheckboxFilters struct {
	onInput   InputHandler
	props     CheckboxFiltersProps
	collapsed bool
	sliced    bool
}

// NewCheckboxFilters mounts a filter group. onInput may be nil.
func NewCheckboxFilters(props CheckboxFiltersProps, onInput InputHandler) *CheckboxFilters {
	c := &CheckboxFilters{
		onInput:   onInput,
		props:     props,
		collapsed: props.InitiallyCollapsed,
	}
	c.sliced = c.overflows()
	return c
}

// SetProps applies new props from the owner. The sliced state is recomputed
// when the options or the threshold change; the collapsed state is not.
func (c *CheckboxFilters) SetProps(props CheckboxFiltersProps) {
	recompute := props.MaxVisibleOptions != c.props.MaxVisibleOptions ||
		!slices.Equal(props.Options, c.props.Options)
	c.props = props
	if recompute {
		c.sliced = c.overflows()
	}
}

// SetValue is shorthand for the owner feeding back a new selection.
func (c *CheckboxFilters) SetValue(value []string) {
	props := c.props
	props.Value = value
	c.SetProps(props)
}

// Props returns the current props.
func (c *CheckboxFilters) Props() CheckboxFiltersProps {
	return c.props
}

// Collapsed reports whether the body is hidden.
func (c *CheckboxFilters) Collapsed() bool {
	return c.collapsed
}

// Sliced reports whether the option list is truncated.
func (c *CheckboxFilters) Sliced() bool {
	return c.sliced
}

// overflows reports whether the options exceed the threshold. An empty list
// never overflows, whatever the threshold.
func (c *CheckboxFilters) overflows() bool {
	n := len(c.props.Options)
	return n > 0 && n > c.props.MaxVisibleOptions
}

// VisibleOptions returns the options currently shown, in option order.
func (c *CheckboxFilters) VisibleOptions() []entities.Option {
	if !c.sliced {
		return c.props.Options
	}
	limit := min(max(c.props.MaxVisibleOptions, 0), len(c.props.Options))
	return c.props.Options[:limit]
}

// HiddenCount is the number of options behind the "Show N more" toggle.
func (c *CheckboxFilters) HiddenCount() int {
	return len(c.props.Options) - max(c.props.MaxVisibleOptions, 0)
}

// IsChecked reports whether id is part of the current selection.
func (c *CheckboxFilters) IsChecked(id string) bool {
	return services.Contains(c.props.Value, id)
}

// SliceToggleText is the label of the show more/less control.
func (c *CheckboxFilters) SliceToggleText() string {
	if c.sliced {
		return fmt.Sprintf("Show %d more", c.HiddenCount())
	}
	return "Show less"
}

// SelectToggleText is the label of the select all/deselect all control.
// Any non-empty selection counts as selected.
func (c *CheckboxFilters) SelectToggleText() string {
	if len(c.props.Value) == 0 {
		return "Select all"
	}
	return "Deselect all"
}

// ToggleCollapse shows or hides the body. Local state only; nothing is emitted.
func (c *CheckboxFilters) ToggleCollapse() {
	c.collapsed = !c.collapsed
}

// ToggleSlice flips between the truncated and the full option list.
func (c *CheckboxFilters) ToggleSlice() {
	c.sliced = !c.sliced
}

// ToggleSelect emits every option id when nothing is selected and an empty
// selection otherwise.
func (c *CheckboxFilters) ToggleSelect() {
	c.emit(services.ToggleAll(c.props.Value, c.props.Options))
}

// Check emits the selection with id appended.
func (c *CheckboxFilters) Check(id string) {
	c.emit(services.Check(c.props.Value, id))
}

// Uncheck emits the selection without id.
func (c *CheckboxFilters) Uncheck(id string) {
	c.emit(services.Uncheck(c.props.Value, id))
}

// SetChecked emits the selection with id checked or unchecked.
func (c *CheckboxFilters) SetChecked(id string, checked bool) {
	c.emit(services.SetChecked(c.props.Value, id, checked))
}

func (c *CheckboxFilters) emit(next []string) {
	if c.onInput != nil {
		c.onInput(next)
	}
}

// Render builds the element tree for the current props and local state.
func (c *CheckboxFilters) Render() *view.Node {
	header := view.TextEl("div", "card-header filter-header", c.props.Label)
	header.OnClick = c.ToggleCollapse
	header.SetAttr("aria-expanded", fmt.Sprint(!c.collapsed))

	root := view.El("div", "card checkbox-filters", header)
	root.SetAttr("data-name", c.props.Name)
	if c.collapsed {
		return root
	}

	group := view.El("div", "checkbox-group")
	group.SetAttr("role", "group")
	for _, opt := range c.VisibleOptions() {
		group.Append(c.renderOption(opt))
	}

	body := view.El("div", "card-body", group)

	if c.overflows() {
		toggle := view.TextEl("a", "toggle-slice", c.SliceToggleText())
		toggle.SetAttr("href", "#")
		toggle.OnClick = c.ToggleSlice
		body.Append(toggle)
	}

	if len(c.props.Options) > 0 {
		toggle := view.TextEl("a", "toggle-select", c.SelectToggleText())
		toggle.SetAttr("href", "#")
		toggle.OnClick = c.ToggleSelect
		body.Append(toggle)
	}

	return root.Append(body)
}

func (c *CheckboxFilters) renderOption(opt entities.Option) *view.Node {
	inputID := fmt.Sprintf("%s-%s", c.props.Name, opt.ID)

	input := view.El("input", "custom-control-input").
		SetAttr("type", "checkbox").
		SetAttr("id", inputID).
		SetAttr("name", c.props.Name).
		SetAttr("value", opt.ID)
	input.Checked = c.IsChecked(opt.ID)
	id := opt.ID
	input.OnChange = func(checked bool) {
		c.SetChecked(id, checked)
	}

	label := view.TextEl("label", "custom-control-label", opt.Label).SetAttr("for", inputID)

	return view.El("div", "custom-control custom-checkbox", input, label)
}

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/ui/components"
	"github.com/biobank-directory/dirview/internal/ui/view"
)

func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		out = append(out, strings.TrimRight(l, " "))
	}
	return out
}

func filterGroup(collapsed bool) *components.CheckboxFilters {
	props := components.DefaultCheckboxFiltersProps()
	props.Name = "facet"
	props.Label = "Label"
	props.Options = []entities.Option{{ID: "1", Label: "option 1"}, {ID: "2", Label: "option 2"}}
	props.Value = []string{"1"}
	props.InitiallyCollapsed = collapsed
	return components.NewCheckboxFilters(props, nil)
}

func TestRenderer_CheckboxFilters(t *testing.T) {
	out := New(PlainStyles()).Render(filterGroup(false).Render())

	assert.Equal(t, []string{
		"▾ Label",
		"[x] option 1",
		"[ ] option 2",
		"Deselect all",
	}, lines(out))
}

func TestRenderer_CollapsedGroup(t *testing.T) {
	out := New(PlainStyles()).Render(filterGroup(true).Render())

	assert.Equal(t, []string{"▸ Label"}, lines(out))
}

func TestRenderer_Focus(t *testing.T) {
	root := filterGroup(false).Render()
	boxes := root.FindAll("input")
	require.Len(t, boxes, 2)

	out := New(PlainStyles()).WithFocus(boxes[1]).Render(root)

	assert.Contains(t, lines(out), FocusMarker+" [ ] option 2")
	assert.NotContains(t, out, FocusMarker+" [x]")
}

func TestRenderer_WithFocusDoesNotChangeOriginal(t *testing.T) {
	root := filterGroup(false).Render()
	r := New(PlainStyles())
	_ = r.WithFocus(root.Find("input"))

	assert.NotContains(t, r.Render(root), FocusMarker)
}

func TestRenderer_SkipsHidden(t *testing.T) {
	root := view.El("div", "",
		view.TextEl("p", "", "shown"),
		&view.Node{Tag: "p", Text: "hidden", Hidden: true},
	)

	assert.Equal(t, "shown", New(PlainStyles()).Render(root))
}

type source struct {
	network *entities.Network
}

func (s source) NetworkReport() *entities.Network { return s.network }
func (s source) CurrentPath() string              { return "/network/" + s.network.ID }
func (s source) IsLoading() bool                  { return false }

func TestRenderer_ReportCard(t *testing.T) {
	n := &entities.Network{
		ID:        "n-001",
		Name:      "beautiful network",
		Contact:   &entities.Contact{Email: "blaat@bla.nl"},
		CommonMTA: true,
	}
	out := New(PlainStyles()).Render(components.NewNetworkReportCard(source{network: n}).Render())

	got := lines(out)
	assert.Equal(t, "beautiful network", got[0])
	assert.Equal(t, "n-001", got[1])
	assert.Contains(t, got, "Email: blaat@bla.nl")
	assert.Contains(t, got, "Common MTA: yes")
	assert.Contains(t, got, "Common charter: no")
}

type relatedSource struct {
	source
	report *entities.NetworkReport
}

func (s relatedSource) Report() *entities.NetworkReport { return s.report }

func TestRenderer_ReportCardTabs(t *testing.T) {
	n := &entities.Network{ID: "n-001", Name: "beautiful network"}
	card := components.NewNetworkReportCard(relatedSource{
		source: source{network: n},
		report: &entities.NetworkReport{
			Network:     n,
			Collections: []entities.Collection{{ID: "c-001", Name: "Blood samples"}},
		},
	})
	r := New(PlainStyles())

	got := lines(r.Render(card.Render()))
	assert.Contains(t, got, "[Collections (1)] │ Biobanks (0)")
	assert.Contains(t, got, "Blood samples")
	assert.NotContains(t, got, "No biobanks", "inactive pane is hidden")

	card.SelectTab(components.TabBiobanks)
	got = lines(r.Render(card.Render()))
	assert.Contains(t, got, "Collections (1) │ [Biobanks (0)]")
	assert.Contains(t, got, "No biobanks")
	assert.NotContains(t, got, "Blood samples")
}

func TestRenderer_DefaultStylesKeepText(t *testing.T) {
	out := New(DefaultStyles()).Render(filterGroup(false).Render())

	assert.Contains(t, out, "option 1")
	assert.Contains(t, out, "Deselect all")
}

func TestCheckbox(t *testing.T) {
	assert.Equal(t, "[x]", Checkbox(true))
	assert.Equal(t, "[ ]", Checkbox(false))
}

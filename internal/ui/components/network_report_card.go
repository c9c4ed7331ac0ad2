package components

import (
	"fmt"
	"strings"

	"github.com/biobank-directory/dirview/internal/application/dto"
	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/domain/values"
	"github.com/biobank-directory/dirview/internal/ui/view"
)

// ReportSource is the read-only slice of the application store the report
// card consumes.
type ReportSource interface {
	NetworkReport() *entities.Network
	CurrentPath() string
	IsLoading() bool
}

// RelationSource is implemented by sources that also hold the collections
// and biobanks of the reported network.
type RelationSource interface {
	Report() *entities.NetworkReport
}

// Contact keys produced by NetworkReportCard.Contact.
const (
	ContactEmail   = "email"
	ContactWebsite = "website"
)

// contactLabels are the display labels of the contact keys, in display order.
var contactLabels = []struct{ key, label string }{
	{ContactEmail, "Email"},
	{ContactWebsite, "Website"},
}

// Tab identifies a pane of the related entities tabs.
type Tab int

const (
	TabCollections Tab = iota
	TabBiobanks
)

var tabTitles = [...]string{TabCollections: "Collections", TabBiobanks: "Biobanks"}

// RelatedLink points at a collection or biobank of the reported network.
type RelatedLink struct {
	ID   string
	Name string
	Path string
}

// NetworkReportCard derives the report view of the network held by its
// source. Every value is computed on demand from the source and the card
// never writes to it; the only local state is the active tab.
type NetworkReportCard struct {
	source ReportSource
	tab    Tab
}

// NewNetworkReportCard creates a report card reading from source.
func NewNetworkReportCard(source ReportSource) *NetworkReportCard {
	return &NetworkReportCard{source: source}
}

func (c *NetworkReportCard) network() *entities.Network {
	if c.source == nil {
		return nil
	}
	return c.source.NetworkReport()
}

// relations returns the full report when the source carries one for the
// network currently reported.
func (c *NetworkReportCard) relations() *entities.NetworkReport {
	rs, ok := c.source.(RelationSource)
	if !ok {
		return nil
	}
	report := rs.Report()
	n := c.network()
	if report == nil || n == nil || report.GetNetwork() == nil || report.GetNetwork().ID != n.ID {
		return nil
	}
	return report
}

// ActiveTab returns the tab shown in the related entities pane.
func (c *NetworkReportCard) ActiveTab() Tab {
	return c.tab
}

// SelectTab shows tab. Unknown tabs are ignored. Local state only.
func (c *NetworkReportCard) SelectTab(tab Tab) {
	if tab >= 0 && int(tab) < len(tabTitles) {
		c.tab = tab
	}
}

// NextTab cycles through the tabs by delta, wrapping around.
func (c *NetworkReportCard) NextTab(delta int) {
	n := len(tabTitles)
	c.tab = Tab(((int(c.tab)+delta)%n + n) % n)
}

// Collections links the collections taking part in the network.
func (c *NetworkReportCard) Collections() []RelatedLink {
	report := c.relations()
	if report == nil {
		return nil
	}
	links := make([]RelatedLink, 0, len(report.Collections))
	for i := range report.Collections {
		col := &report.Collections[i]
		links = append(links, RelatedLink{ID: col.ID, Name: col.Title(), Path: "/collection/" + col.ID})
	}
	return links
}

// Biobanks links the biobanks taking part in the network.
func (c *NetworkReportCard) Biobanks() []RelatedLink {
	report := c.relations()
	if report == nil {
		return nil
	}
	links := make([]RelatedLink, 0, len(report.Biobanks))
	for i := range report.Biobanks {
		b := &report.Biobanks[i]
		links = append(links, RelatedLink{ID: b.ID, Name: b.Title(), Path: "/biobank/" + b.ID})
	}
	return links
}

func (c *NetworkReportCard) tabLinks(tab Tab) []RelatedLink {
	if tab == TabBiobanks {
		return c.Biobanks()
	}
	return c.Collections()
}

// NetworkID is the trailing segment of the current path, or "" when the
// path has none.
func (c *NetworkReportCard) NetworkID() string {
	if c.source == nil {
		return ""
	}
	return values.LastPathSegment(c.source.CurrentPath())
}

// Contact returns the contact fields present on the network. Missing values
// produce no entry.
func (c *NetworkReportCard) Contact() map[string]DerivedField {
	n := c.network()
	contact := make(map[string]DerivedField)
	if email := n.Email(); email != "" {
		contact[ContactEmail] = DerivedField{Value: email, Type: values.DisplayEmail}
	}
	if website := n.Website(); website != "" {
		contact[ContactWebsite] = DerivedField{Value: website, Type: values.DisplayURL}
	}
	return contact
}

// DetailsContent maps every network feature label to its flag. The label
// set and order are fixed; absent networks report false throughout.
func (c *NetworkReportCard) DetailsContent() Fields {
	n := c.network()
	features := entities.Features()
	details := make(Fields, 0, len(features))
	for _, f := range features {
		details = append(details, LabeledField{
			Label:        f.Label,
			DerivedField: DerivedField{Value: f.Enabled(n), Type: values.DisplayBoolean},
		})
	}
	return details
}

// Identity returns the descriptive fields present on the network.
func (c *NetworkReportCard) Identity() Fields {
	n := c.network()
	if n == nil {
		return nil
	}
	var fields Fields
	add := func(label, value string, typ values.DisplayType) {
		if value != "" {
			fields = append(fields, LabeledField{Label: label, DerivedField: DerivedField{Value: value, Type: typ}})
		}
	}
	add("Name", n.Name, values.DisplayString)
	add("Description", n.Description, values.DisplayText)
	add("Juridical person", n.JuridicalPerson, values.DisplayString)
	add("URL", n.URL, values.DisplayURL)
	return fields
}

// ViewModel collects the derived values for output adapters.
func (c *NetworkReportCard) ViewModel() dto.NetworkReport {
	report := dto.NetworkReport{
		ID:       c.NetworkID(),
		Title:    c.network().Title(),
		Identity: c.Identity().toDTO(),
		Details:  c.DetailsContent().toDTO(),
	}
	if contact := c.contactFields(); len(contact) > 0 {
		report.Contact = make(map[string]dto.Field, len(contact))
		for _, f := range contact {
			report.Contact[f.key] = dto.Field{Label: f.Label, Value: f.Value, Type: f.Type.String()}
		}
	}
	report.Collections = linksToDTO(c.Collections())
	report.Biobanks = linksToDTO(c.Biobanks())
	return report
}

type contactField struct {
	key string
	LabeledField
}

// contactFields returns the contact entries under their display labels, in
// display order.
func (c *NetworkReportCard) contactFields() []contactField {
	contact := c.Contact()
	var out []contactField
	for _, cl := range contactLabels {
		if f, ok := contact[cl.key]; ok {
			out = append(out, contactField{key: cl.key, LabeledField: LabeledField{Label: cl.label, DerivedField: f}})
		}
	}
	return out
}

func linksToDTO(links []RelatedLink) []dto.Link {
	if len(links) == 0 {
		return nil
	}
	out := make([]dto.Link, 0, len(links))
	for _, l := range links {
		out = append(out, dto.Link(l))
	}
	return out
}

// Render builds the element tree of the card.
func (c *NetworkReportCard) Render() *view.Node {
	root := view.El("div", "container mg-network-report-card")

	if c.source != nil && c.source.IsLoading() {
		return root.Append(view.TextEl("div", "spinner loading", "Loading network report"))
	}

	n := c.network()
	if n == nil {
		return root
	}

	root.Append(
		view.TextEl("h1", "network-title", n.Title()),
		view.TextEl("small", "network-id", c.NetworkID()),
	)

	if identity := c.Identity(); len(identity) > 0 {
		root.Append(renderFields("identity", identity))
	}

	if contact := c.contactFields(); len(contact) > 0 {
		fields := make(Fields, 0, len(contact))
		for _, f := range contact {
			fields = append(fields, f.LabeledField)
		}
		root.Append(renderFields("contact", fields))
	}

	root.Append(renderFields("details", c.DetailsContent()))

	if c.relations() != nil {
		root.Append(c.renderTabs())
	}
	return root
}

// renderTabs builds the related entities tabs. Inactive panes stay in the
// tree but are hidden.
func (c *NetworkReportCard) renderTabs() *view.Node {
	nav := view.El("ul", "nav nav-tabs")
	content := view.El("div", "tab-content")

	for i, title := range tabTitles {
		tab := Tab(i)
		links := c.tabLinks(tab)
		active := tab == c.tab

		navClass := "nav-link"
		if active {
			navClass += " active"
		}
		link := view.TextEl("a", navClass, fmt.Sprintf("%s (%d)", title, len(links))).SetAttr("href", "#")
		link.OnClick = func() { c.SelectTab(tab) }
		nav.Append(view.El("li", "nav-item", link))

		pane := view.El("div", "tab-pane").SetAttr("role", "tabpanel")
		pane.Hidden = !active
		if active {
			pane.Classes = append(pane.Classes, "active")
		}
		if len(links) == 0 {
			pane.Append(view.TextEl("small", "empty", "No "+strings.ToLower(title)))
		} else {
			list := view.El("ul", "list-unstyled")
			for _, l := range links {
				list.Append(view.El("li", "", view.TextEl("a", "router-link", l.Name).SetAttr("href", l.Path)))
			}
			pane.Append(list)
		}
		content.Append(pane)
	}

	return view.El("div", "report-tabs", nav, content)
}

func renderFields(class string, fields Fields) *view.Node {
	table := view.El("table", "table "+class)
	for _, f := range fields {
		table.Append(view.El("tr", "",
			view.TextEl("th", "", f.Label),
			view.El("td", "", renderValue(f.DerivedField)),
		))
	}
	return table
}

func renderValue(f DerivedField) *view.Node {
	text := f.String()
	switch f.Type {
	case values.DisplayEmail:
		return view.TextEl("a", "email", text).SetAttr("href", "mailto:"+text)
	case values.DisplayURL:
		return view.TextEl("a", "url", text).SetAttr("href", text)
	case values.DisplayBoolean:
		class := "badge badge-danger"
		if v, _ := f.Value.(bool); v {
			class = "badge badge-success"
		}
		return view.TextEl("span", class, text)
	default:
		return view.TextEl("span", "", text)
	}
}

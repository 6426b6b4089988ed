package ui

import (
	"encoding/json"
	"strconv"

	hx "maragu.dev/gomponents-htmx"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/i18n"
)

// TextField renders a labeled single-line input.
func TextField(name, label, value string) cmp.Node {
	return g.Div(
		g.Class("mb-3"),
		g.Label(g.Class("block text-sm font-medium text-gray-700 mb-1"), g.For(name), cmp.Text(label)),
		g.Input(
			g.Type("text"),
			g.ID(name),
			g.Name(name),
			g.Value(value),
			g.Class("w-full border rounded px-3 py-2"),
		),
	)
}

// TextArea renders a labeled multi-line input.
func TextArea(name, label, value string) cmp.Node {
	return g.Div(
		g.Class("mb-3"),
		g.Label(g.Class("block text-sm font-medium text-gray-700 mb-1"), g.For(name), cmp.Text(label)),
		g.Textarea(
			g.ID(name),
			g.Name(name),
			g.Rows("4"),
			g.Class("w-full border rounded px-3 py-2"),
			cmp.Text(value),
		),
	)
}

// Checkbox renders a labeled checkbox.
func Checkbox(name, label string, checked bool) cmp.Node {
	return g.Div(
		g.Class("mb-3 flex items-center gap-2"),
		g.Input(
			g.Type("checkbox"),
			g.ID(name),
			g.Name(name),
			cmp.If(checked, g.Checked()),
		),
		g.Label(g.For(name), g.Class("text-sm text-gray-700"), cmp.Text(label)),
	)
}

// SelectField renders a labeled dropdown.
func SelectField(name, label, value string, options []string) cmp.Node {
	var opts []cmp.Node
	for _, o := range options {
		opts = append(opts, g.Option(
			g.Value(o),
			cmp.If(o == value, g.Selected()),
			cmp.Text(o),
		))
	}
	return g.Div(
		g.Class("mb-3"),
		g.Label(g.Class("block text-sm font-medium text-gray-700 mb-1"), g.For(name), cmp.Text(label)),
		g.Select(g.ID(name), g.Name(name), g.Class("w-full border rounded px-3 py-2"), cmp.Group(opts)),
	)
}

// SectionCard wraps a section editor in the selectable card chrome.
func SectionCard(title string, selected bool, children ...cmp.Node) cmp.Node {
	border := "border-gray-200"
	if selected {
		border = "border-indigo-500 ring-2 ring-indigo-200"
	}
	return g.Div(
		g.Class("bg-white shadow rounded-lg border "+border+" p-6 mb-4"),
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text(title)),
		cmp.Group(children),
	)
}

// OpButton renders a button that applies one item operation to the
// section it lives in. The operation goes over the wire as JSON.
func OpButton(opURL, label string, op builder.ItemOp) cmp.Node {
	vals, _ := json.Marshal(op)
	return g.Button(
		g.Type("button"),
		g.Class("text-sm px-2 py-1 border rounded text-gray-600 hover:bg-gray-50"),
		hx.Post(opURL),
		hx.Ext("json-enc"),
		hx.Vals(string(vals)),
		hx.Target("closest form"),
		hx.Swap("outerHTML"),
		cmp.Text(label),
	)
}

// ItemToolbar renders the standard remove/up/down controls for the item
// at index within the named list field.
func ItemToolbar(opURL, field string, index int) cmp.Node {
	return g.Div(
		g.Class("flex gap-2 mb-2"),
		OpButton(opURL, "↑", builder.ItemOp{Field: field, Op: builder.OpUp, Index: index}),
		OpButton(opURL, "↓", builder.ItemOp{Field: field, Op: builder.OpDown, Index: index}),
		OpButton(opURL, "Remove", builder.ItemOp{Field: field, Op: builder.OpRemove, Index: index}),
	)
}

// UnknownNotice is the inert fallback rendered for a section tag the
// editor does not recognize. The raw payload stays untouched in the
// document and round-trips on save.
func UnknownNotice(tr *i18n.Translator, tag string) cmp.Node {
	return g.Div(
		g.Class("bg-amber-50 border border-amber-300 rounded-lg p-6 mb-4"),
		g.H2(g.Class("text-lg font-semibold text-amber-800"), cmp.Text(tr.T("builder.unknown"))),
		g.P(g.Class("text-sm text-amber-700 mt-1"), cmp.Text(tr.T("builder.unknown_hint"))),
		g.P(g.Class("text-xs text-amber-600 mt-2 font-mono"), cmp.Text(tag)),
	)
}

// IndexName builds the conventional dotted form-field name for an item
// field, e.g. links.2.title.
func IndexName(field string, index int, prop string) string {
	return field + "." + strconv.Itoa(index) + "." + prop
}

package landingbuilder

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	hx "maragu.dev/gomponents-htmx"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/landing"
	"github.com/lumenlearn/pagecraft/internal/modules/media"
	"github.com/lumenlearn/pagecraft/internal/ui"
)

const basePath = "/builder/landing"

func render(c echo.Context, status int, node cmp.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return node.Render(c.Response())
}

// page composes the whole builder screen: the add-section menu, the
// ordered section rail, the editor for the selected section, and the
// page-level controls.
func (h *Handler) page(flash ui.FlashData) cmp.Node {
	orch := h.deps.Orchestrator
	sections := orch.Sections()
	selected, hasSelection := orch.Selected()

	return ui.Layout("Landing Builder", flash,
		g.Div(
			g.Class("grid grid-cols-12 gap-6"),
			g.Div(
				g.Class("col-span-4"),
				h.addSectionMenu(),
				h.sectionRail(sections, selected, hasSelection),
				h.pageControls(orch.Enabled()),
			),
			g.Div(
				g.Class("col-span-8"),
				h.editorPane(sections, selected, hasSelection),
			),
		),
	)
}

func (h *Handler) addSectionMenu() cmp.Node {
	items := []cmp.Node{
		g.H2(g.Class("text-lg font-semibold mb-3"), cmp.Text(h.deps.Translator.T("builder.add_section"))),
	}
	for _, tag := range h.deps.Registry.Tags() {
		entry, ok := h.deps.Registry.Lookup(tag)
		if !ok {
			continue
		}
		items = append(items, g.Button(
			g.Type("button"),
			g.Class("block w-full text-left px-3 py-2 rounded hover:bg-gray-50"),
			hx.Post(fmt.Sprintf("%s/sections?type=%s", basePath, tag)),
			hx.Target("body"),
			g.Div(g.Class("font-medium"), cmp.Text(entry.Meta.Label)),
			g.Div(g.Class("text-xs text-gray-500"), cmp.Text(entry.Meta.Description)),
		))
	}
	return g.Div(g.Class("bg-white shadow rounded-lg p-4 mb-4"), cmp.Group(items))
}

func (h *Handler) sectionRail(sections []builder.Section, selected int, hasSelection bool) cmp.Node {
	rows := make([]cmp.Node, 0, len(sections))
	for i, s := range sections {
		label := s.Kind()
		if entry, ok := h.deps.Registry.Lookup(s.Kind()); ok {
			label = entry.Meta.Label
		}
		rowClass := "flex items-center justify-between px-3 py-2 rounded border mb-1"
		if hasSelection && i == selected {
			rowClass += " border-indigo-500 bg-indigo-50"
		} else {
			rowClass += " border-gray-200"
		}
		rows = append(rows, g.Div(
			g.Class(rowClass),
			g.Button(
				g.Type("button"),
				g.Class("text-left flex-1"),
				hx.Post(fmt.Sprintf("%s/sections/%d/select", basePath, i)),
				hx.Target("body"),
				cmp.Text(label),
			),
			g.Div(
				g.Class("flex gap-1"),
				reorderButton(i, i-1, "↑", i > 0),
				reorderButton(i, i+1, "↓", i < len(sections)-1),
				g.Button(
					g.Type("button"),
					g.Class("text-sm px-2 py-1 text-red-600 hover:bg-red-50 rounded"),
					hx.Delete(fmt.Sprintf("%s/sections/%d", basePath, i)),
					hx.Target("body"),
					cmp.Text("✕"),
				),
			),
		))
	}
	return g.Div(g.Class("bg-white shadow rounded-lg p-4 mb-4"), cmp.Group(rows))
}

func reorderButton(src, dst int, label string, enabled bool) cmp.Node {
	if !enabled {
		return g.Button(
			g.Type("button"),
			g.Class("text-sm px-2 py-1 text-gray-300 rounded"),
			g.Disabled(),
			cmp.Text(label),
		)
	}
	vals := fmt.Sprintf(`{"source": %d, "destination": %d}`, src, dst)
	return g.Button(
		g.Type("button"),
		g.Class("text-sm px-2 py-1 text-gray-600 hover:bg-gray-50 rounded"),
		hx.Post(basePath+"/sections/reorder"),
		hx.Ext("json-enc"),
		hx.Vals(vals),
		hx.Target("body"),
		cmp.Text(label),
	)
}

func (h *Handler) pageControls(enabled bool) cmp.Node {
	return g.Div(
		g.Class("bg-white shadow rounded-lg p-4"),
		g.Div(
			g.Class("flex items-center gap-2 mb-3"),
			g.Input(
				g.Type("checkbox"),
				g.ID("page-enabled"),
				g.Name("enabled"),
				cmp.If(enabled, g.Checked()),
				hx.Post(basePath+"/enabled"),
				hx.Ext("json-enc"),
				hx.Swap("none"),
			),
			g.Label(g.For("page-enabled"), g.Class("text-sm"), cmp.Text(h.deps.Translator.T("builder.enabled"))),
		),
		g.Button(
			g.Type("button"),
			g.Class("w-full bg-indigo-600 text-white rounded px-4 py-2 font-medium hover:bg-indigo-700"),
			hx.Post(basePath+"/save"),
			hx.Target("body"),
			cmp.Text(h.deps.Translator.T("builder.save")),
		),
	)
}

func (h *Handler) editorPane(sections []builder.Section, selected int, hasSelection bool) cmp.Node {
	if !hasSelection || selected < 0 || selected >= len(sections) {
		return g.Div(
			g.Class("bg-white shadow rounded-lg p-10 text-center text-gray-500"),
			cmp.Text("Select a section to edit it."),
		)
	}
	putURL, opURL := h.sectionURLs(selected)
	section := sections[selected]

	var extras cmp.Node
	if section.Kind() == landing.TypeFeaturedCourses {
		extras = h.courseHints()
	}
	return g.Div(
		landing.Editor(section, putURL, opURL, h.deps.Translator),
		extras,
	)
}

// courseHints lists the org's courses so admins can copy UUIDs into a
// featured-courses section.
func (h *Handler) courseHints() cmp.Node {
	if len(h.deps.Courses) == 0 {
		return nil
	}
	rows := make([]cmp.Node, 0, len(h.deps.Courses))
	for _, course := range h.deps.Courses {
		var thumb cmp.Node
		if course.ThumbnailImage != "" {
			thumb = g.Img(
				g.Src(media.CourseThumbnailURL(h.deps.MediaBaseURL, course.CourseUUID, course.ThumbnailImage)),
				g.Alt(course.Name),
				g.Class("w-8 h-8 rounded object-cover"),
			)
		}
		rows = append(rows, g.Li(
			g.Class("flex items-center gap-2 text-sm py-1"),
			thumb,
			g.Span(g.Class("flex-1"), cmp.Text(course.Name)),
			g.Code(g.Class("text-xs text-gray-500"), cmp.Text(course.CourseUUID)),
		))
	}
	return g.Div(
		g.Class("bg-white shadow rounded-lg p-4 mt-4"),
		g.H3(g.Class("text-sm font-semibold mb-2"), cmp.Text("Available courses ("+strconv.Itoa(len(rows))+")")),
		g.Ul(rows...),
	)
}

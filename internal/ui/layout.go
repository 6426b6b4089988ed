package ui

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// PageTitle handles the conditional logic for the browser tab title.
func PageTitle(title string) string {
	if title != "" {
		return title + " - PageCraft"
	}
	return "PageCraft"
}

// Layout wraps page content in the shared HTML shell. The htmx runtime
// drives all editor interactions; the websocket extension feeds the live
// preview pane.
func Layout(title string, flash FlashData, content ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(PageTitle(title))),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12/dist/ext/json-enc.js")),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
			),
			g.Body(
				g.Class("bg-gray-100 min-h-screen"),
				FlashBanner(flash),
				g.Main(g.Class("container mx-auto p-6"), cmp.Group(content)),
			),
		),
	)
}

// FlashBanner renders pending notifications, or nothing.
func FlashBanner(flash FlashData) cmp.Node {
	if len(flash.Success) == 0 && len(flash.Error) == 0 {
		return nil
	}
	var nodes []cmp.Node
	for _, msg := range flash.Success {
		nodes = append(nodes, g.Div(
			g.Class("bg-green-100 border border-green-300 text-green-800 px-4 py-2 rounded mb-2"),
			cmp.Text(msg),
		))
	}
	for _, msg := range flash.Error {
		nodes = append(nodes, g.Div(
			g.Class("bg-red-100 border border-red-300 text-red-800 px-4 py-2 rounded mb-2"),
			cmp.Text(msg),
		))
	}
	return g.Div(g.Class("container mx-auto px-6 pt-4"), cmp.Group(nodes))
}

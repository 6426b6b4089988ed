package profilebuilder

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	hx "maragu.dev/gomponents-htmx"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/lumenlearn/pagecraft/internal/api"
	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/debounce"
	"github.com/lumenlearn/pagecraft/internal/domain"
	"github.com/lumenlearn/pagecraft/internal/drafts"
	"github.com/lumenlearn/pagecraft/internal/i18n"
	appmw "github.com/lumenlearn/pagecraft/internal/middleware"
	"github.com/lumenlearn/pagecraft/internal/profile"
	"github.com/lumenlearn/pagecraft/internal/pubsub"
	"github.com/lumenlearn/pagecraft/internal/schema"
	"github.com/lumenlearn/pagecraft/internal/ui"
)

const basePath = "/builder/profile"

// HandlerDeps holds everything the profile builder handlers need.
type HandlerDeps struct {
	Orchestrator *builder.Orchestrator
	Registry     *builder.Registry
	Client       *api.Client
	Publisher    pubsub.Publisher
	DraftStore   *drafts.Store
	HasDrafts    bool
	Debouncer    *debounce.Debouncer
	Translator   *i18n.Translator
	UserID       string
}

// Handler serves the profile builder's editing routes.
type Handler struct {
	deps HandlerDeps
}

// NewHandler creates the handler.
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{deps: deps}
}

// RegisterRoutes mounts the builder routes on the given group. The server
// mounts the group under /builder/profile.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Page)
	g.POST("/sections", h.AddSection)
	g.PUT("/sections/:index", h.UpdateSection)
	g.DELETE("/sections/:index", h.DeleteSection)
	g.POST("/sections/reorder", h.Reorder)
	g.POST("/sections/:index/items", h.ItemOp)
	g.POST("/sections/:index/select", h.Select)
	g.POST("/selection/clear", h.ClearSelection)
	g.POST("/save", h.Save)
}

// Page renders the full profile builder UI.
func (h *Handler) Page(c echo.Context) error {
	return render(c, http.StatusOK, h.page(ui.GetFlashData(c)))
}

// AddSection appends an empty section of the requested type and, unlike
// the landing builder, immediately selects it for editing.
func (h *Handler) AddSection(c echo.Context) error {
	tag := c.QueryParam("type")
	if _, err := h.deps.Orchestrator.AddSection(tag); err != nil {
		if errors.Is(err, domain.ErrUnknownSectionType) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown section type: "+tag)
		}
		return err
	}
	return h.Page(c)
}

// UpdateSection replaces the section at index with the decoded body.
func (h *Handler) UpdateSection(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}
	section, err := h.deps.Registry.DecodeSection(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.deps.Orchestrator.UpdateSection(index, section); err != nil {
		return indexError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteSection removes the section at index.
func (h *Handler) DeleteSection(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return err
	}
	if err := h.deps.Orchestrator.DeleteSection(index); err != nil {
		return indexError(err)
	}
	return h.Page(c)
}

type reorderRequest struct {
	Source      int `json:"source" validate:"gte=0"`
	Destination int `json:"destination" validate:"gte=0"`
}

// Reorder moves a section from source to destination index.
func (h *Handler) Reorder(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reorder request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.deps.Orchestrator.Reorder(req.Source, req.Destination); err != nil {
		return indexError(err)
	}
	return h.Page(c)
}

// ItemOp applies a list edit to a field of the section at index.
func (h *Handler) ItemOp(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return err
	}

	var op builder.ItemOp
	if err := c.Bind(&op); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item operation")
	}
	if err := c.Validate(&op); err != nil {
		return err
	}

	sections := h.deps.Orchestrator.Sections()
	if index < 0 || index >= len(sections) {
		return echo.NewHTTPError(http.StatusNotFound, "no section at index "+strconv.Itoa(index))
	}

	updated, err := profile.ApplyItemOp(sections[index], op)
	if err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.deps.Orchestrator.UpdateSection(index, updated); err != nil {
		return indexError(err)
	}

	putURL, opURL := sectionURLs(index)
	return render(c, http.StatusOK, profile.Editor(updated, putURL, opURL, h.deps.Translator))
}

// Select moves the selection cursor.
func (h *Handler) Select(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return err
	}
	if err := h.deps.Orchestrator.Select(index); err != nil {
		return indexError(err)
	}
	return h.Page(c)
}

// ClearSelection drops the selection cursor.
func (h *Handler) ClearSelection(c echo.Context) error {
	h.deps.Orchestrator.ClearSelection()
	return h.Page(c)
}

// Save reads the user object fresh and writes it back with only the
// profile field replaced, so concurrent edits to other user fields
// survive a profile save.
func (h *Handler) Save(c echo.Context) error {
	orch := h.deps.Orchestrator
	if !orch.BeginSave() {
		ui.SetFlashError(c, h.deps.Translator.T("builder.saving"))
		return echo.NewHTTPError(http.StatusConflict, domain.ErrSaveInFlight.Error())
	}
	defer orch.EndSave()

	h.deps.Debouncer.Flush()

	ctx := c.Request().Context()
	log := appmw.FromContext(ctx)
	token := appmw.Token(c)

	user, err := h.deps.Client.GetUser(ctx, h.deps.UserID, token)
	if err != nil {
		log.Error("Could not load user before profile save", "error", err)
		ui.SetFlashError(c, h.deps.Translator.T("builder.save_error"))
		return echo.NewHTTPError(http.StatusBadGateway, domain.ErrSaveFailed.Error())
	}

	env := orch.Envelope()
	if payload, err := env.MarshalJSON(); err == nil {
		if issues, verr := schema.Validate(payload); verr == nil && len(issues) > 0 {
			// Validation hints are cosmetic and never gate the save.
			log.Warn("Envelope has schema issues", "count", len(issues), "first", issues[0])
		}
	}

	if err := h.deps.Client.UpdateUserProfile(ctx, h.deps.UserID, user, env, token); err != nil {
		log.Error("Profile save failed", "error", err)
		ui.SetFlashError(c, h.deps.Translator.T("builder.save_error"))
		return echo.NewHTTPError(http.StatusBadGateway, domain.ErrSaveFailed.Error())
	}

	if h.deps.HasDrafts {
		if err := h.deps.DraftStore.Delete(ctx, Scope); err != nil {
			log.Warn("Failed to drop profile draft after save", "error", err)
		}
	}

	if payload, err := env.MarshalJSON(); err == nil {
		if err := h.deps.Publisher.Publish(ctx, pubsub.Message{
			Topic:   pubsub.TopicEnvelopeSaved,
			Scope:   Scope,
			Payload: payload,
		}); err != nil {
			log.Warn("Failed to publish save event", "error", err)
		}
	}

	ui.SetFlashSuccess(c, h.deps.Translator.T("builder.saved"))
	return h.Page(c)
}

func render(c echo.Context, status int, node cmp.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return node.Render(c.Response())
}

// page composes the profile builder screen.
func (h *Handler) page(flash ui.FlashData) cmp.Node {
	orch := h.deps.Orchestrator
	sections := orch.Sections()
	selected, hasSelection := orch.Selected()

	return ui.Layout("Profile Builder", flash,
		g.Div(
			g.Class("grid grid-cols-12 gap-6"),
			g.Div(
				g.Class("col-span-4"),
				h.addSectionMenu(),
				h.sectionRail(sections, selected, hasSelection),
				h.saveControls(),
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

func (h *Handler) saveControls() cmp.Node {
	return g.Div(
		g.Class("bg-white shadow rounded-lg p-4"),
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
	putURL, opURL := sectionURLs(selected)
	return profile.Editor(sections[selected], putURL, opURL, h.deps.Translator)
}

func sectionURLs(index int) (putURL, opURL string) {
	base := basePath + "/sections/" + strconv.Itoa(index)
	return base, base + "/items"
}

func pathIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "index must be an integer")
	}
	return index, nil
}

func indexError(err error) error {
	if errors.Is(err, domain.ErrIndexOutOfRange) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return err
}

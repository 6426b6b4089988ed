package landingbuilder

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lumenlearn/pagecraft/internal/api"
	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/debounce"
	"github.com/lumenlearn/pagecraft/internal/domain"
	"github.com/lumenlearn/pagecraft/internal/drafts"
	"github.com/lumenlearn/pagecraft/internal/i18n"
	"github.com/lumenlearn/pagecraft/internal/landing"
	appmw "github.com/lumenlearn/pagecraft/internal/middleware"
	"github.com/lumenlearn/pagecraft/internal/pubsub"
	"github.com/lumenlearn/pagecraft/internal/schema"
	"github.com/lumenlearn/pagecraft/internal/ui"
)

// HandlerDeps holds everything the landing builder handlers need.
type HandlerDeps struct {
	Orchestrator *builder.Orchestrator
	Registry     *builder.Registry
	Client       *api.Client
	Publisher    pubsub.Publisher
	DraftStore   *drafts.Store
	HasDrafts    bool
	Debouncer    *debounce.Debouncer
	Translator   *i18n.Translator
	OrgID        string
	MediaBaseURL string
	Courses      []domain.Course
}

// Handler serves the landing builder's editing routes.
type Handler struct {
	deps HandlerDeps
}

// NewHandler creates the handler.
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{deps: deps}
}

// RegisterRoutes mounts the builder routes on the given group. The server
// mounts the group under /builder/landing.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Page)
	g.POST("/sections", h.AddSection)
	g.PUT("/sections/:index", h.UpdateSection)
	g.DELETE("/sections/:index", h.DeleteSection)
	g.POST("/sections/reorder", h.Reorder)
	g.POST("/sections/:index/items", h.ItemOp)
	g.POST("/sections/:index/select", h.Select)
	g.POST("/selection/clear", h.ClearSelection)
	g.POST("/enabled", h.SetEnabled)
	g.PUT("/navbar", h.UpdateNavbar)
	g.POST("/save", h.Save)
}

// Page renders the full builder UI.
func (h *Handler) Page(c echo.Context) error {
	return render(c, http.StatusOK, h.page(ui.GetFlashData(c)))
}

// AddSection appends an empty section of the requested type. The type
// comes from the ?type query parameter, mirroring the add-section menu.
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

// UpdateSection replaces the section at index with the decoded request
// body. The registry decoder keeps unknown tags intact, so even a raw
// payload for an unsupported type round-trips.
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

// ItemOp applies a list edit (add/remove/up/down/toggle) to a field of
// the section at index and re-renders that section's editor.
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

	updated, err := landing.ApplyItemOp(sections[index], op)
	if err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.deps.Orchestrator.UpdateSection(index, updated); err != nil {
		return indexError(err)
	}

	putURL, opURL := h.sectionURLs(index)
	return render(c, http.StatusOK, landing.Editor(updated, putURL, opURL, h.deps.Translator))
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

type enabledRequest struct {
	Enabled bool `json:"enabled"`
}

// SetEnabled flips the page-level enabled flag.
func (h *Handler) SetEnabled(c echo.Context) error {
	var req enabledRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid enabled request")
	}
	h.deps.Orchestrator.SetEnabled(req.Enabled)
	return c.NoContent(http.StatusNoContent)
}

// UpdateNavbar replaces the page-level navbar config.
func (h *Handler) UpdateNavbar(c echo.Context) error {
	var nav builder.NavbarConfig
	if err := c.Bind(&nav); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid navbar")
	}
	h.deps.Orchestrator.SetNavbar(&nav)
	return c.NoContent(http.StatusNoContent)
}

// Save writes the whole envelope to the remote API. Last write wins;
// concurrent saves from this session are refused while one is in flight,
// but the envelope itself stays editable throughout.
func (h *Handler) Save(c echo.Context) error {
	orch := h.deps.Orchestrator
	if !orch.BeginSave() {
		ui.SetFlashError(c, h.deps.Translator.T("builder.saving"))
		return echo.NewHTTPError(http.StatusConflict, domain.ErrSaveInFlight.Error())
	}
	defer orch.EndSave()

	// Push any pending debounced sync first so previews and drafts match
	// what is about to be persisted.
	h.deps.Debouncer.Flush()

	env := orch.Envelope()
	ctx := c.Request().Context()
	log := appmw.FromContext(ctx)

	if payload, err := env.MarshalJSON(); err == nil {
		if issues, verr := schema.Validate(payload); verr == nil && len(issues) > 0 {
			// Validation hints are cosmetic and never gate the save.
			log.Warn("Envelope has schema issues", "count", len(issues), "first", issues[0])
		}
	}

	if err := h.deps.Client.UpdateOrgLanding(ctx, h.deps.OrgID, env, appmw.Token(c)); err != nil {
		log.Error("Landing save failed", "error", err)
		ui.SetFlashError(c, h.deps.Translator.T("builder.save_error"))
		return echo.NewHTTPError(http.StatusBadGateway, domain.ErrSaveFailed.Error())
	}

	if h.deps.HasDrafts {
		if err := h.deps.DraftStore.Delete(ctx, Scope); err != nil {
			log.Warn("Failed to drop landing draft after save", "error", err)
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

func (h *Handler) sectionURLs(index int) (putURL, opURL string) {
	base := "/builder/landing/sections/" + strconv.Itoa(index)
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

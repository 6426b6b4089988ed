package media

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lumenlearn/pagecraft/internal/api"
	"github.com/lumenlearn/pagecraft/internal/config"
	"github.com/lumenlearn/pagecraft/internal/domain"
	appmw "github.com/lumenlearn/pagecraft/internal/middleware"
	"github.com/lumenlearn/pagecraft/internal/previews"
	"github.com/lumenlearn/pagecraft/internal/storage"
)

// Upload targets map to distinct storage prefixes and URL shapes.
const (
	TargetLanding   = "landing"
	TargetPreviews  = "previews"
	TargetProfile   = "profile"
	TargetLogo      = "logo"
	TargetThumbnail = "thumbnail"
)

var uploadTargets = map[string]bool{
	TargetLanding:   true,
	TargetPreviews:  true,
	TargetProfile:   true,
	TargetLogo:      true,
	TargetThumbnail: true,
}

// Branding assets are always images.
var imageOnlyTargets = map[string]bool{
	TargetLogo:      true,
	TargetThumbnail: true,
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

var videoExts = map[string]bool{
	".mp4":  true,
	".webm": true,
}

// HandlerDeps holds everything the media handlers need.
type HandlerDeps struct {
	Store         storage.Store
	Client        *api.Client
	List          *previews.List
	Config        *config.Config
	MaxImageBytes int64
	MaxVideoBytes int64
}

// Handler serves upload and preview routes.
type Handler struct {
	deps HandlerDeps

	// mu serializes preview list mutations from interleaved requests.
	mu sync.Mutex
}

// NewHandler creates the handler.
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{deps: deps}
}

// RegisterRoutes mounts the media routes on the given group. The server
// mounts the group under /builder/media.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/upload", h.Upload)
	g.GET("/files/:target/:filename", h.ServeFile)
	g.GET("/previews", h.ListPreviews)
	g.POST("/previews/videos", h.AddVideo)
	g.DELETE("/previews/:id", h.RemovePreview)
	g.POST("/previews/reorder", h.ReorderPreviews)
	g.POST("/previews/save", h.SavePreviews)
}

type uploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Upload accepts one multipart file. The extension allowlist and size
// ceiling are checked against the declared header before any bytes are
// stored, so an oversized or mistyped file costs nothing.
func (h *Handler) Upload(c echo.Context) error {
	target := c.QueryParam("target")
	if target == "" {
		target = TargetLanding
	}
	if !uploadTargets[target] {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown upload target: "+target)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "a file field is required")
	}

	ext := strings.ToLower(path.Ext(fileHeader.Filename))
	var limit int64
	switch {
	case imageExts[ext]:
		limit = h.deps.MaxImageBytes
	case videoExts[ext] && !imageOnlyTargets[target]:
		limit = h.deps.MaxVideoBytes
	default:
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, domain.ErrUnsupportedMediaType.Error())
	}
	if fileHeader.Size > limit {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, domain.ErrFileTooLarge.Error())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	filename := uuid.NewString() + ext
	storedPath := path.Join(target, filename)
	if _, err := h.deps.Store.Save(c.Request().Context(), storedPath, src); err != nil {
		appmw.FromContext(c.Request().Context()).Error("Upload store failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not store upload")
	}

	resp := uploadResponse{
		Filename: filename,
		URL:      h.fileURL(target, filename),
	}

	// Preview uploads join the strip immediately, at the end.
	if target == TargetPreviews && imageExts[ext] {
		h.mu.Lock()
		h.deps.List.Append(previews.Preview{
			ID:       filename,
			URL:      resp.URL,
			Type:     previews.KindImage,
			Filename: filename,
		})
		h.mu.Unlock()
	}

	return c.JSON(http.StatusCreated, resp)
}

// ServeFile streams a stored upload back out.
func (h *Handler) ServeFile(c echo.Context) error {
	target := c.Param("target")
	filename := path.Base(c.Param("filename"))

	f, err := h.deps.Store.Open(c.Request().Context(), path.Join(target, filename))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "no such file")
	}
	defer f.Close()
	return c.Stream(http.StatusOK, contentType(filename), f)
}

// ListPreviews returns the current preview strip in order.
func (h *Handler) ListPreviews(c echo.Context) error {
	h.mu.Lock()
	items := h.deps.List.Items()
	h.mu.Unlock()
	return c.JSON(http.StatusOK, items)
}

type addVideoRequest struct {
	URL  string `json:"url" validate:"required,url"`
	Type string `json:"type" validate:"required,oneof=youtube loom"`
}

// AddVideo appends a YouTube or Loom embed to the preview strip.
func (h *Handler) AddVideo(c echo.Context) error {
	var req addVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid video request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := videoID(req.URL, previews.Kind(req.Type))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.mu.Lock()
	h.deps.List.Append(previews.Preview{
		ID:   id,
		URL:  req.URL,
		Type: previews.Kind(req.Type),
	})
	items := h.deps.List.Items()
	h.mu.Unlock()

	return c.JSON(http.StatusCreated, items)
}

// RemovePreview deletes one preview item and closes the order gap.
func (h *Handler) RemovePreview(c echo.Context) error {
	id := c.Param("id")

	h.mu.Lock()
	h.deps.List.Remove(id)
	items := h.deps.List.Items()
	h.mu.Unlock()

	return c.JSON(http.StatusOK, items)
}

type reorderRequest struct {
	Source      int `json:"source" validate:"gte=0"`
	Destination int `json:"destination" validate:"gte=0"`
}

// ReorderPreviews moves one item and renumbers the strip.
func (h *Handler) ReorderPreviews(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reorder request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.mu.Lock()
	err := h.deps.List.Reorder(req.Source, req.Destination)
	items := h.deps.List.Items()
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// SavePreviews persists the strip's stored shape to the remote API.
func (h *Handler) SavePreviews(c echo.Context) error {
	h.mu.Lock()
	stored := h.deps.List.Stored()
	h.mu.Unlock()

	ctx := c.Request().Context()
	if err := h.deps.Client.UpdateOrgPreviews(ctx, h.deps.Config.OrgID, stored, appmw.Token(c)); err != nil {
		appmw.FromContext(ctx).Error("Preview save failed", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, domain.ErrSaveFailed.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) fileURL(target, filename string) string {
	switch target {
	case TargetPreviews:
		return OrgPreviewMediaURL(h.deps.Config.MediaBaseURL, h.deps.Config.OrgID, filename)
	case TargetProfile:
		return UserAvatarURL(h.deps.Config.MediaBaseURL, h.deps.Config.UserID, filename)
	case TargetLogo:
		return OrgLogoURL(h.deps.Config.MediaBaseURL, h.deps.Config.OrgID, filename)
	case TargetThumbnail:
		return OrgThumbnailURL(h.deps.Config.MediaBaseURL, h.deps.Config.OrgID, filename)
	default:
		return OrgLandingMediaURL(h.deps.Config.MediaBaseURL, h.deps.Config.OrgID, filename)
	}
}

// videoID extracts the provider video id from an embed URL.
func videoID(raw string, kind previews.Kind) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid video url: %w", err)
	}
	switch kind {
	case previews.KindYouTube:
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
		// youtu.be/<id> and /embed/<id> short forms.
		if id := path.Base(u.Path); id != "" && id != "/" && id != "." {
			return id, nil
		}
		return "", errors.New("could not extract YouTube video id")
	case previews.KindLoom:
		if id := path.Base(u.Path); id != "" && id != "/" && id != "." {
			return id, nil
		}
		return "", errors.New("could not extract Loom video id")
	}
	return "", fmt.Errorf("unsupported video kind %q", kind)
}

func contentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}

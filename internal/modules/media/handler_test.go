package media

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/pagecraft/internal/previews"
	"github.com/lumenlearn/pagecraft/internal/storage"
	"github.com/lumenlearn/pagecraft/internal/testutils"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	if err := tv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()

	cfg := testutils.ConfigForTests(t)
	list, err := previews.Load(nil, func(filename string) string { return "u/" + filename })
	require.NoError(t, err)

	h := NewHandler(HandlerDeps{
		Store:         storage.NewAferoStore(afero.NewMemMapFs(), "media"),
		List:          list,
		Config:        cfg,
		MaxImageBytes: 1 << 20,
		MaxVideoBytes: 2 << 20,
	})

	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return h, e
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUpload(t *testing.T) {
	t.Run("stores an image and returns its url", func(t *testing.T) {
		h, e := newTestHandler(t)
		body, ct := multipartBody(t, "photo.png", "pngbytes")

		req := httptest.NewRequest(http.MethodPost, "/upload?target=landing", body)
		req.Header.Set(echo.HeaderContentType, ct)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Upload(e.NewContext(req, rec)))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp uploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, strings.HasSuffix(resp.Filename, ".png"))
		assert.Contains(t, resp.URL, resp.Filename)
	})

	t.Run("rejects an unsupported extension before storing", func(t *testing.T) {
		h, e := newTestHandler(t)
		body, ct := multipartBody(t, "payload.exe", "mz")

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set(echo.HeaderContentType, ct)
		rec := httptest.NewRecorder()

		err := h.Upload(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnsupportedMediaType, httpErr.Code)
	})

	t.Run("rejects an oversized file", func(t *testing.T) {
		h, e := newTestHandler(t)
		h.deps.MaxImageBytes = 4
		body, ct := multipartBody(t, "big.jpg", "way past four bytes")

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set(echo.HeaderContentType, ct)
		rec := httptest.NewRecorder()

		err := h.Upload(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Code)
	})

	t.Run("rejects an unknown target", func(t *testing.T) {
		h, e := newTestHandler(t)
		body, ct := multipartBody(t, "a.png", "x")

		req := httptest.NewRequest(http.MethodPost, "/upload?target=attic", body)
		req.Header.Set(echo.HeaderContentType, ct)
		rec := httptest.NewRecorder()

		err := h.Upload(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("logo upload resolves to the org logo path", func(t *testing.T) {
		h, e := newTestHandler(t)
		body, ct := multipartBody(t, "logo.png", "x")

		req := httptest.NewRequest(http.MethodPost, "/upload?target=logo", body)
		req.Header.Set(echo.HeaderContentType, ct)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Upload(e.NewContext(req, rec)))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp uploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, OrgLogoURL("http://api.test.local", "org-test", resp.Filename), resp.URL)
	})

	t.Run("thumbnail upload resolves to the org thumbnail path", func(t *testing.T) {
		h, e := newTestHandler(t)
		body, ct := multipartBody(t, "thumb.jpg", "x")

		req := httptest.NewRequest(http.MethodPost, "/upload?target=thumbnail", body)
		req.Header.Set(echo.HeaderContentType, ct)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Upload(e.NewContext(req, rec)))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp uploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, OrgThumbnailURL("http://api.test.local", "org-test", resp.Filename), resp.URL)
	})

	t.Run("rejects a video sent to a branding target", func(t *testing.T) {
		h, e := newTestHandler(t)
		body, ct := multipartBody(t, "clip.mp4", "x")

		req := httptest.NewRequest(http.MethodPost, "/upload?target=logo", body)
		req.Header.Set(echo.HeaderContentType, ct)
		rec := httptest.NewRecorder()

		err := h.Upload(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnsupportedMediaType, httpErr.Code)
	})

	t.Run("preview image joins the strip", func(t *testing.T) {
		h, e := newTestHandler(t)
		body, ct := multipartBody(t, "strip.png", "x")

		req := httptest.NewRequest(http.MethodPost, "/upload?target=previews", body)
		req.Header.Set(echo.HeaderContentType, ct)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Upload(e.NewContext(req, rec)))
		items := h.deps.List.Items()
		require.Len(t, items, 1)
		assert.Equal(t, previews.KindImage, items[0].Type)
		assert.Equal(t, 0, items[0].Order)
	})
}

func TestServeFile(t *testing.T) {
	h, e := newTestHandler(t)
	body, ct := multipartBody(t, "photo.png", "pngbytes")

	req := httptest.NewRequest(http.MethodPost, "/upload?target=landing", body)
	req.Header.Set(echo.HeaderContentType, ct)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Upload(e.NewContext(req, rec)))

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	t.Run("streams the stored bytes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("target", "filename")
		c.SetParamValues("landing", resp.Filename)

		require.NoError(t, h.ServeFile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pngbytes", rec.Body.String())
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("missing file is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("target", "filename")
		c.SetParamValues("landing", "gone.png")

		err := h.ServeFile(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestAddVideo(t *testing.T) {
	postJSON := func(t *testing.T, h *Handler, e *echo.Echo, payload string) (*httptest.ResponseRecorder, error) {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/previews/videos", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return rec, h.AddVideo(e.NewContext(req, rec))
	}

	t.Run("watch url", func(t *testing.T) {
		h, e := newTestHandler(t)
		rec, err := postJSON(t, h, e, `{"url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ","type":"youtube"}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		items := h.deps.List.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "dQw4w9WgXcQ", items[0].ID)
	})

	t.Run("short url", func(t *testing.T) {
		h, e := newTestHandler(t)
		_, err := postJSON(t, h, e, `{"url":"https://youtu.be/abc123","type":"youtube"}`)
		require.NoError(t, err)
		assert.Equal(t, "abc123", h.deps.List.Items()[0].ID)
	})

	t.Run("loom share url", func(t *testing.T) {
		h, e := newTestHandler(t)
		_, err := postJSON(t, h, e, `{"url":"https://www.loom.com/share/deadbeef","type":"loom"}`)
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", h.deps.List.Items()[0].ID)
	})

	t.Run("unsupported provider fails validation", func(t *testing.T) {
		h, e := newTestHandler(t)
		_, err := postJSON(t, h, e, `{"url":"https://vimeo.com/123","type":"vimeo"}`)
		assert.Error(t, err)
	})
}

func TestPreviewRoutes(t *testing.T) {
	h, e := newTestHandler(t)
	h.deps.List.Append(previews.Preview{ID: "a.png", Type: previews.KindImage, Filename: "a.png"})
	h.deps.List.Append(previews.Preview{ID: "b.png", Type: previews.KindImage, Filename: "b.png"})

	t.Run("list returns current order", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/previews", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.ListPreviews(e.NewContext(req, rec)))

		var items []previews.Preview
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "a.png", items[0].ID)
	})

	t.Run("reorder", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/previews/reorder", strings.NewReader(`{"source":0,"destination":1}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, h.ReorderPreviews(e.NewContext(req, rec)))
		assert.Equal(t, "b.png", h.deps.List.Items()[0].ID)
	})

	t.Run("reorder out of range is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/previews/reorder", strings.NewReader(`{"source":0,"destination":9}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.ReorderPreviews(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("remove closes the gap", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("b.png")

		require.NoError(t, h.RemovePreview(c))
		items := h.deps.List.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 0, items[0].Order)
	})
}

func TestVideoID(t *testing.T) {
	id, err := videoID("https://www.youtube.com/embed/xyz", previews.KindYouTube)
	require.NoError(t, err)
	assert.Equal(t, "xyz", id)

	_, err = videoID("://bad", previews.KindYouTube)
	assert.Error(t, err)

	_, err = videoID("https://example.com/x", previews.Kind("vimeo"))
	assert.Error(t, err)
}

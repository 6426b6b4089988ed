package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/pagecraft/internal/domain"
)

func TestGetOrgLanding(t *testing.T) {
	t.Run("extracts the nested landing document", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/orgs/org-1", r.URL.Path)
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			io.WriteString(w, `{"config":{"config":{"landing":{"sections":[],"enabled":true}}}}`)
		}))
		defer srv.Close()

		c := New(srv.URL)
		raw, err := c.GetOrgLanding(context.Background(), "org-1", "tok-123")
		require.NoError(t, err)
		assert.JSONEq(t, `{"sections":[],"enabled":true}`, string(raw))
	})

	t.Run("missing landing key yields nil bytes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"config":{"config":{}}}`)
		}))
		defer srv.Close()

		raw, err := New(srv.URL).GetOrgLanding(context.Background(), "org-1", "")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("non-200 wraps ErrNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := New(srv.URL).GetOrgLanding(context.Background(), "org-1", "tok")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed body degrades to nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `not json`)
		}))
		defer srv.Close()

		raw, err := New(srv.URL).GetOrgLanding(context.Background(), "org-1", "tok")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})
}

func TestUpdateOrgLanding(t *testing.T) {
	t.Run("puts the full envelope", func(t *testing.T) {
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/orgs/org-1/landing", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			gotBody, _ = io.ReadAll(r.Body)
		}))
		defer srv.Close()

		payload := map[string]any{"sections": []any{}, "enabled": false}
		err := New(srv.URL).UpdateOrgLanding(context.Background(), "org-1", payload, "tok")
		require.NoError(t, err)
		assert.JSONEq(t, `{"sections":[],"enabled":false}`, string(gotBody))
	})

	t.Run("non-200 wraps ErrSaveFailed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		err := New(srv.URL).UpdateOrgLanding(context.Background(), "org-1", map[string]any{}, "tok")
		assert.ErrorIs(t, err, domain.ErrSaveFailed)
	})
}

func TestUpdateUserProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/u-1", r.URL.Path)

		var user map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.JSONEq(t, `"Ada"`, string(user["name"]), "unrelated user fields survive the write")
		assert.JSONEq(t, `{"sections":[]}`, string(user["profile"]))
	}))
	defer srv.Close()

	user := map[string]json.RawMessage{
		"name":    json.RawMessage(`"Ada"`),
		"profile": json.RawMessage(`{"old":true}`),
	}
	envelope := map[string]any{"sections": []any{}}
	err := New(srv.URL).UpdateUserProfile(context.Background(), "u-1", user, envelope, "tok")
	require.NoError(t, err)
}

func TestListOrgCourses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orgs/slug/acme/courses", r.URL.Path)
		io.WriteString(w, `[{"course_uuid":"c-1","name":"Intro"},{"course_uuid":"c-2","name":"Advanced"}]`)
	}))
	defer srv.Close()

	courses, err := New(srv.URL).ListOrgCourses(context.Background(), "acme", "tok")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "c-1", courses[0].CourseUUID)
	assert.Equal(t, "Advanced", courses[1].Name)
}

func TestGetOrgPreviews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"previews":{"items":[]}}`)
	}))
	defer srv.Close()

	raw, err := New(srv.URL).GetOrgPreviews(context.Background(), "org-1", "tok")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(raw))
}

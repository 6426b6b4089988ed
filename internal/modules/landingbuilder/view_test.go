package landingbuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/pagecraft/internal/domain"
	"github.com/lumenlearn/pagecraft/internal/i18n"
)

func TestCourseHints(t *testing.T) {
	h := NewHandler(HandlerDeps{
		Translator:   i18n.ForLocale("en"),
		MediaBaseURL: "https://cdn.example.com",
		Courses: []domain.Course{
			{CourseUUID: "c-1", Name: "Go Basics", ThumbnailImage: "cover.jpg"},
			{CourseUUID: "c-2", Name: "No Artwork"},
		},
	})

	var sb strings.Builder
	require.NoError(t, h.courseHints().Render(&sb))
	out := sb.String()

	assert.Contains(t, out, "https://cdn.example.com/content/uploads/courses/c-1/cover.jpg")
	assert.Contains(t, out, "Go Basics")
	// A course without artwork still lists, just without an image.
	assert.Contains(t, out, "c-2")
	assert.Equal(t, 1, strings.Count(out, "<img"))
}

func TestCourseHints_NoCourses(t *testing.T) {
	h := NewHandler(HandlerDeps{Translator: i18n.ForLocale("en")})
	assert.Nil(t, h.courseHints())
}

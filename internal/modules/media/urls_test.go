package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaURLs(t *testing.T) {
	const base = "https://cdn.example.com"

	assert.Equal(t, "https://cdn.example.com/content/uploads/img/org-1/logo.png",
		OrgLogoURL(base, "org-1", "logo.png"))
	assert.Equal(t, "https://cdn.example.com/content/uploads/thumbnails/org-1/t.png",
		OrgThumbnailURL(base, "org-1", "t.png"))
	assert.Equal(t, "https://cdn.example.com/content/orgs/org-1/landing/hero.webp",
		OrgLandingMediaURL(base, "org-1", "hero.webp"))
	assert.Equal(t, "https://cdn.example.com/content/orgs/org-1/previews/p.jpg",
		OrgPreviewMediaURL(base, "org-1", "p.jpg"))
	assert.Equal(t, "https://cdn.example.com/content/uploads/avatars/user-1/a.png",
		UserAvatarURL(base, "user-1", "a.png"))
	assert.Equal(t, "https://cdn.example.com/content/uploads/courses/c-1/cover.jpg",
		CourseThumbnailURL(base, "c-1", "cover.jpg"))
}

package media

import "fmt"

// URL helpers for content stored by the platform. All builder-rendered
// media links go through these so the path conventions live in one
// place.

// OrgLogoURL returns the public URL of an org's logo image.
func OrgLogoURL(base, orgUUID, filename string) string {
	return fmt.Sprintf("%s/content/uploads/img/%s/%s", base, orgUUID, filename)
}

// OrgThumbnailURL returns the public URL of an org's thumbnail image.
func OrgThumbnailURL(base, orgUUID, filename string) string {
	return fmt.Sprintf("%s/content/uploads/thumbnails/%s/%s", base, orgUUID, filename)
}

// OrgLandingMediaURL returns the public URL of a landing-page upload.
func OrgLandingMediaURL(base, orgUUID, filename string) string {
	return fmt.Sprintf("%s/content/orgs/%s/landing/%s", base, orgUUID, filename)
}

// OrgPreviewMediaURL returns the public URL of a preview-strip upload.
func OrgPreviewMediaURL(base, orgUUID, filename string) string {
	return fmt.Sprintf("%s/content/orgs/%s/previews/%s", base, orgUUID, filename)
}

// UserAvatarURL returns the public URL of a user's avatar.
func UserAvatarURL(base, userUUID, filename string) string {
	return fmt.Sprintf("%s/content/uploads/avatars/%s/%s", base, userUUID, filename)
}

// CourseThumbnailURL returns the public URL of a course thumbnail.
func CourseThumbnailURL(base, courseUUID, filename string) string {
	return fmt.Sprintf("%s/content/uploads/courses/%s/%s", base, courseUUID, filename)
}

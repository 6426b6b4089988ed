package domain

// Course is the read-only course summary returned by the remote course
// lookup. It is used by the featured-courses and profile courses editors
// for selection UI and is never mutated by the builder.
type Course struct {
	CourseUUID     string `json:"course_uuid"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ThumbnailImage string `json:"thumbnail_image,omitempty"`
}

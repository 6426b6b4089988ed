// Package profile defines the section vocabulary for user profile pages:
// the tagged variants, their empty-section factories, and their editors.
package profile

import (
	"encoding/json"
	"time"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/i18n"
)

// Section tags of the profile vocabulary.
const (
	TypeImageGallery = "image-gallery"
	TypeText         = "text"
	TypeLinks        = "links"
	TypeSkills       = "skills"
	TypeExperience   = "experience"
	TypeEducation    = "education"
	TypeAffiliation  = "affiliation"
	TypeCourses      = "courses"
)

// SkillLevel is the proficiency scale for a profile skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// Valid reports whether the level is one of the known values. An empty
// level is valid: the field is optional.
func (l SkillLevel) Valid() bool {
	switch l {
	case "", SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

type Skill struct {
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level,omitempty"`
	Category string     `json:"category,omitempty"`
}

type Experience struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// WithCurrent flips the current flag. An ongoing role has no end date, so
// setting current clears it.
func (e Experience) WithCurrent(current bool) Experience {
	e.Current = current
	if current {
		e.EndDate = ""
	}
	return e
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// WithCurrent mirrors Experience.WithCurrent.
func (e Education) WithCurrent(current bool) Education {
	e.Current = current
	if current {
		e.EndDate = ""
	}
	return e
}

type Affiliation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
}

type ImageGallerySection struct {
	builder.Base
	Images []Image `json:"images"`
}

type TextSection struct {
	builder.Base
	Content string `json:"content"`
}

type LinksSection struct {
	builder.Base
	Links []Link `json:"links"`
}

type SkillsSection struct {
	builder.Base
	Skills []Skill `json:"skills"`
}

type ExperienceSection struct {
	builder.Base
	Experiences []Experience `json:"experiences"`
}

// Normalize enforces the current/endDate exclusion on every entry.
func (s ExperienceSection) Normalize() builder.Section {
	for i, e := range s.Experiences {
		if e.Current && e.EndDate != "" {
			s.Experiences = builder.ReplaceAt(s.Experiences, i, e.WithCurrent(true))
		}
	}
	return s
}

type EducationSection struct {
	builder.Base
	// The persisted field is named "education", matching the stored
	// profile documents.
	Education []Education `json:"education"`
}

// Normalize enforces the current/endDate exclusion on every entry.
func (s EducationSection) Normalize() builder.Section {
	for i, e := range s.Education {
		if e.Current && e.EndDate != "" {
			s.Education = builder.ReplaceAt(s.Education, i, e.WithCurrent(true))
		}
	}
	return s
}

type AffiliationSection struct {
	builder.Base
	Affiliations []Affiliation `json:"affiliations"`
}

// CoursesSection has no embedded payload: the section renders by fetching
// the owner's courses from the course lookup at render time.
type CoursesSection struct {
	builder.Base
}

// Tags lists the profile vocabulary in display order.
func Tags() []string {
	return []string{
		TypeImageGallery,
		TypeText,
		TypeLinks,
		TypeSkills,
		TypeExperience,
		TypeEducation,
		TypeAffiliation,
		TypeCourses,
	}
}

// NewEmptySection is the exhaustive empty-section factory. Adding a new
// tag requires updating this switch and the editor dispatcher together.
func NewEmptySection(tag string, tr *i18n.Translator) (builder.Section, bool) {
	base := builder.NewBase(tag, tr.T("section."+tag+".label")+" Section")
	switch tag {
	case TypeImageGallery:
		return ImageGallerySection{Base: base, Images: []Image{}}, true
	case TypeText:
		return TextSection{Base: base, Content: ""}, true
	case TypeLinks:
		return LinksSection{Base: base, Links: []Link{}}, true
	case TypeSkills:
		return SkillsSection{Base: base, Skills: []Skill{}}, true
	case TypeExperience:
		return ExperienceSection{Base: base, Experiences: []Experience{}}, true
	case TypeEducation:
		return EducationSection{Base: base, Education: []Education{}}, true
	case TypeAffiliation:
		return AffiliationSection{Base: base, Affiliations: []Affiliation{}}, true
	case TypeCourses:
		return CoursesSection{Base: base}, true
	}
	return nil, false
}

// NewExperienceItem returns the default appended experience entry: not
// current, started today.
func NewExperienceItem() Experience {
	return Experience{
		StartDate: time.Now().Format("2006-01-02"),
		Current:   false,
	}
}

// NewEducationItem returns the default appended education entry.
func NewEducationItem() Education {
	return Education{
		StartDate: time.Now().Format("2006-01-02"),
		Current:   false,
	}
}

var iconKeys = map[string]string{
	TypeImageGallery: "image",
	TypeText:         "text",
	TypeLinks:        "link",
	TypeSkills:       "award",
	TypeExperience:   "briefcase",
	TypeEducation:    "graduation-cap",
	TypeAffiliation:  "map-pin",
	TypeCourses:      "book-open",
}

// NewRegistry builds the section type registry for profile pages.
func NewRegistry(tr *i18n.Translator) *builder.Registry {
	reg := builder.NewRegistry()
	for _, tag := range Tags() {
		tag := tag
		reg.Register(tag, builder.Entry{
			Meta: builder.Meta{
				IconKey:     iconKeys[tag],
				Label:       tr.T("section." + tag + ".label"),
				Description: tr.T("section." + tag + ".description"),
			},
			New: func() builder.Section {
				s, _ := NewEmptySection(tag, tr)
				return s
			},
			Decode: decoderFor(tag),
		})
	}
	return reg
}

func decoderFor(tag string) func(raw json.RawMessage) (builder.Section, error) {
	switch tag {
	case TypeImageGallery:
		return builder.DecodeAs[ImageGallerySection]
	case TypeText:
		return builder.DecodeAs[TextSection]
	case TypeLinks:
		return builder.DecodeAs[LinksSection]
	case TypeSkills:
		return builder.DecodeAs[SkillsSection]
	case TypeExperience:
		return builder.DecodeAs[ExperienceSection]
	case TypeEducation:
		return builder.DecodeAs[EducationSection]
	case TypeAffiliation:
		return builder.DecodeAs[AffiliationSection]
	case TypeCourses:
		return builder.DecodeAs[CoursesSection]
	default:
		panic("profile: no decoder for tag " + tag)
	}
}

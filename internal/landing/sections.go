// Package landing defines the section vocabulary for organization landing
// pages. Two generations coexist: the legacy v1 sections (hero,
// text-and-image, logos, people, featured-courses) and the v2 premium
// sections. The envelope's schemaVersion distinguishes them; documents
// without a stamp are classified by inspecting their tags.
package landing

import (
	"encoding/json"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/i18n"
)

// Section tags, v1 generation.
const (
	TypeHero            = "hero"
	TypeTextAndImage    = "text-and-image"
	TypeLogos           = "logos"
	TypePeople          = "people"
	TypeFeaturedCourses = "featured-courses"
)

// Section tags, v2 premium generation.
const (
	TypeHeroLeadMagnet   = "heroLeadMagnet"
	TypeAbout            = "about"
	TypeTestimonialsGrid = "testimonialsGrid"
	TypeHowItWorks       = "howItWorks"
	TypePricing          = "pricing"
	TypeTrust            = "trust"
	TypeCommunity        = "community"
	TypeFAQ              = "faq"
	TypeFinalCTA         = "finalCta"
	TypeFooter           = "footer"
)

// Background styles a hero section's backdrop.
type Background struct {
	Type      string   `json:"type"` // solid | gradient | image
	Color     string   `json:"color,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Direction string   `json:"direction,omitempty"`
	Image     string   `json:"image,omitempty"`
}

type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type Heading struct {
	Text  string `json:"text"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

type Button struct {
	Text       string `json:"text"`
	Link       string `json:"link"`
	Color      string `json:"color"`
	Background string `json:"background"`
}

// Illustration is the optional hero side image.
type Illustration struct {
	Image         Image  `json:"image"`
	Position      string `json:"position"`      // left | right
	VerticalAlign string `json:"verticalAlign"` // top | center | bottom
	Size          string `json:"size"`          // small | medium | large
}

// Person is one entry of a people section.
type Person struct {
	UserUUID    string `json:"user_uuid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Username    string `json:"username,omitempty"`
}

// CourseRef references a course by UUID; the course data itself comes
// from the course lookup at render time.
type CourseRef struct {
	CourseUUID string `json:"course_uuid"`
}

type HeroSection struct {
	builder.Base
	Background   Background    `json:"background"`
	Heading      Heading       `json:"heading"`
	Subheading   Heading       `json:"subheading"`
	Buttons      []Button      `json:"buttons"`
	Illustration *Illustration `json:"illustration,omitempty"`
	ContentAlign string        `json:"contentAlign,omitempty"` // left | center | right
}

type TextAndImageSection struct {
	builder.Base
	Text    string   `json:"text"`
	Flow    string   `json:"flow"` // left | right
	Image   Image    `json:"image"`
	Buttons []Button `json:"buttons"`
}

type LogosSection struct {
	builder.Base
	Logos []Image `json:"logos"`
}

type PeopleSection struct {
	builder.Base
	People []Person `json:"people"`
}

type FeaturedCoursesSection struct {
	builder.Base
	Courses []CourseRef `json:"courses"`
}

// Tags lists the landing vocabulary, v1 first, in display order.
func Tags() []string {
	return []string{
		TypeHero,
		TypeTextAndImage,
		TypeLogos,
		TypePeople,
		TypeFeaturedCourses,
		TypeHeroLeadMagnet,
		TypeAbout,
		TypeTestimonialsGrid,
		TypeHowItWorks,
		TypePricing,
		TypeTrust,
		TypeCommunity,
		TypeFAQ,
		TypeFinalCTA,
		TypeFooter,
	}
}

var v2Tags = map[string]bool{
	TypeHeroLeadMagnet:   true,
	TypeAbout:            true,
	TypeTestimonialsGrid: true,
	TypeHowItWorks:       true,
	TypePricing:          true,
	TypeTrust:            true,
	TypeCommunity:        true,
	TypeFAQ:              true,
	TypeFinalCTA:         true,
	TypeFooter:           true,
}

// DetectSchemaVersion classifies an unstamped document: any v2 tag makes
// it a v2 landing, otherwise it is treated as legacy v1.
func DetectSchemaVersion(sections []builder.Section) int {
	for _, s := range sections {
		if v2Tags[s.Kind()] {
			return 2
		}
	}
	return 1
}

var iconKeys = map[string]string{
	TypeHero:             "layout",
	TypeTextAndImage:     "image",
	TypeLogos:            "badge",
	TypePeople:           "users",
	TypeFeaturedCourses:  "book-open",
	TypeHeroLeadMagnet:   "magnet",
	TypeAbout:            "info",
	TypeTestimonialsGrid: "quote",
	TypeHowItWorks:       "list-ordered",
	TypePricing:          "credit-card",
	TypeTrust:            "shield-check",
	TypeCommunity:        "message-circle",
	TypeFAQ:              "help-circle",
	TypeFinalCTA:         "megaphone",
	TypeFooter:           "panel-bottom",
}

// NewRegistry builds the section type registry for landing pages.
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
				s, _ := NewEmptySection(tag)
				return s
			},
			Decode: decoderFor(tag),
		})
	}
	return reg
}

func decoderFor(tag string) func(raw json.RawMessage) (builder.Section, error) {
	switch tag {
	case TypeHero:
		return builder.DecodeAs[HeroSection]
	case TypeTextAndImage:
		return builder.DecodeAs[TextAndImageSection]
	case TypeLogos:
		return builder.DecodeAs[LogosSection]
	case TypePeople:
		return builder.DecodeAs[PeopleSection]
	case TypeFeaturedCourses:
		return builder.DecodeAs[FeaturedCoursesSection]
	case TypeHeroLeadMagnet:
		return builder.DecodeAs[HeroLeadMagnetSection]
	case TypeAbout:
		return builder.DecodeAs[AboutSection]
	case TypeTestimonialsGrid:
		return builder.DecodeAs[TestimonialsGridSection]
	case TypeHowItWorks:
		return builder.DecodeAs[HowItWorksSection]
	case TypePricing:
		return builder.DecodeAs[PricingSection]
	case TypeTrust:
		return builder.DecodeAs[TrustSection]
	case TypeCommunity:
		return builder.DecodeAs[CommunitySection]
	case TypeFAQ:
		return builder.DecodeAs[FAQSection]
	case TypeFinalCTA:
		return builder.DecodeAs[FinalCTASection]
	case TypeFooter:
		return builder.DecodeAs[FooterSection]
	default:
		panic("landing: no decoder for tag " + tag)
	}
}

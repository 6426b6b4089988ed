package landing

import "github.com/lumenlearn/pagecraft/internal/builder"

// AccentColorKey selects one of the theme accent palettes.
type AccentColorKey string

const (
	AccentBlue    AccentColorKey = "blue"
	AccentOrange  AccentColorKey = "orange"
	AccentGreen   AccentColorKey = "green"
	AccentPurple  AccentColorKey = "purple"
	AccentNeutral AccentColorKey = "neutral"
)

// ColoredTextSegment is a run of headline text with an optional accent.
type ColoredTextSegment struct {
	Text     string         `json:"text"`
	ColorKey AccentColorKey `json:"colorKey,omitempty"`
}

// CTA is a labelled call-to-action link.
type CTA struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// VideoCard holds the hero video card copy so admins can edit it without
// code changes. All fields are optional for backward compatibility.
type VideoCard struct {
	BadgeText string `json:"badgeText,omitempty"`
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	CTALabel  string `json:"ctaLabel,omitempty"`
}

// LeadMagnet is the email-capture block of the v2 hero.
type LeadMagnet struct {
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	EmailPlaceholder string `json:"emailPlaceholder"`
	ButtonLabel      string `json:"buttonLabel"`
	Microcopy        string `json:"microcopy"`
	BadgeText        string `json:"badgeText"`
}

// HeroLeadMagnetSection is the v2 hero. Like the other anchored v2
// sections its id doubles as the in-page anchor ("inicio" by default) so
// navbar links resolve without extra config.
type HeroLeadMagnetSection struct {
	builder.Base
	Headline     []ColoredTextSegment `json:"headline"`
	Subtitle     string               `json:"subtitle"`
	PrimaryCTA   CTA                  `json:"primaryCta"`
	SecondaryCTA CTA                  `json:"secondaryCta"`
	VideoURL     string               `json:"videoUrl,omitempty"`
	VideoCard    *VideoCard           `json:"videoCard,omitempty"`
	LeadMagnet   LeadMagnet           `json:"leadMagnet"`
}

type AboutSection struct {
	builder.Base
	Headline   string   `json:"headline"`
	Bullets    []string `json:"bullets"`
	VideoLabel string   `json:"videoLabel"`
	Body       []string `json:"body"` // paragraphs
}

// TestimonialCard is one cell of the testimonials grid.
type TestimonialCard struct {
	Name        string         `json:"name"`
	Role        string         `json:"role"`
	Location    string         `json:"location,omitempty"`
	Quote       string         `json:"quote"`
	MetricLabel string         `json:"metricLabel"`
	MetricValue string         `json:"metricValue"`
	ColorKey    AccentColorKey `json:"colorKey,omitempty"`
}

type TestimonialsGridSection struct {
	builder.Base
	Items []TestimonialCard `json:"items"`
}

// HowItWorksStep is one step card; IconKey maps to the UI icon set.
type HowItWorksStep struct {
	Title    string         `json:"title"`
	Body     string         `json:"body"`
	IconKey  string         `json:"iconKey"`
	ColorKey AccentColorKey `json:"colorKey,omitempty"`
}

type HowItWorksSection struct {
	builder.Base
	Steps []HowItWorksStep `json:"steps"`
}

// FeatureState marks a plan feature as included or excluded.
type FeatureState string

const (
	FeatureIncluded FeatureState = "included"
	FeatureExcluded FeatureState = "excluded"
)

// Toggle flips between the two states.
func (s FeatureState) Toggle() FeatureState {
	if s == FeatureIncluded {
		return FeatureExcluded
	}
	return FeatureIncluded
}

// PricingFeature is one line of a plan's feature list.
type PricingFeature struct {
	Text  string       `json:"text"`
	State FeatureState `json:"state"`
}

// PricingPlan is one plan column. ProductID optionally points at a
// payments product so the button can start a checkout flow.
type PricingPlan struct {
	Name        string           `json:"name"`
	Price       string           `json:"price"`
	Period      string           `json:"period"`
	Badge       string           `json:"badge,omitempty"`
	Accent      AccentColorKey   `json:"accent,omitempty"`
	ProductID   int              `json:"productId,omitempty"`
	Features    []PricingFeature `json:"features"`
	ButtonLabel string           `json:"buttonLabel"`
	ButtonHref  string           `json:"buttonHref"`
}

type PricingSection struct {
	builder.Base
	Subtitle         string        `json:"subtitle"`
	Plans            []PricingPlan `json:"plans"`
	FooterHighlights []string      `json:"footerHighlights"`
}

// TrustCard is one reason-to-trust tile.
type TrustCard struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	IconKey string `json:"iconKey"`
}

type TrustSection struct {
	builder.Base
	Cards    []TrustCard `json:"cards"`
	TrustRow []string    `json:"trustRow"`
}

// CommunityTestimonial is the single highlighted community quote.
type CommunityTestimonial struct {
	Quote string `json:"quote"`
	Name  string `json:"name"`
	Meta  string `json:"meta"`
}

type CommunitySection struct {
	builder.Base
	Bullets     []string             `json:"bullets"`
	Testimonial CommunityTestimonial `json:"testimonial"`
	ButtonLabel string               `json:"buttonLabel"`
	ButtonHref  string               `json:"buttonHref"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

type FAQSection struct {
	builder.Base
	Items []FAQItem `json:"items"`
}

type FinalCTASection struct {
	builder.Base
	// The closing headline is colored-segment text; unlike the other
	// sections its persisted "title" field holds segments, so Base.Title
	// is shadowed here.
	Title        []ColoredTextSegment `json:"title"`
	Subtitle     string               `json:"subtitle"`
	PrimaryCTA   CTA                  `json:"primaryCta"`
	SecondaryCTA CTA                  `json:"secondaryCta"`
}

// FooterColumn is one link column of the footer.
type FooterColumn struct {
	Title string               `json:"title"`
	Links []builder.NavbarLink `json:"links"`
}

// FooterNewsletter is the footer's email signup block.
type FooterNewsletter struct {
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
	ButtonLabel string `json:"buttonLabel"`
	Microcopy   string `json:"microcopy"`
}

type FooterSection struct {
	builder.Base
	Columns    []FooterColumn   `json:"columns"`
	Newsletter FooterNewsletter `json:"newsletter"`
	Copyright  string           `json:"copyright"`
}

// Package i18n provides the builder's label localization. English is the
// fallback; Spanish strings are carried for the premium landing
// vocabulary, which ships Spanish-first copy.
package i18n

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Translator resolves message keys for one matched locale.
type Translator struct {
	tag language.Tag
}

// ForLocale matches a BCP 47 locale string ("en", "es-MX", ...) against
// the supported languages and returns a translator for the best match.
func ForLocale(locale string) *Translator {
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return &Translator{tag: s}
		}
	}
	return &Translator{tag: language.English}
}

// T resolves a message key, falling back to English, then to the key
// itself so missing entries stay visible instead of rendering blank.
func (t *Translator) T(key string) string {
	if t.tag == language.Spanish {
		if msg, ok := spanish[key]; ok {
			return msg
		}
	}
	if msg, ok := english[key]; ok {
		return msg
	}
	return key
}

var english = map[string]string{
	"builder.save":          "Save Changes",
	"builder.saving":        "Saving…",
	"builder.saved":         "Changes saved successfully",
	"builder.save_error":    "Could not save changes",
	"builder.add_section":   "Add Section",
	"builder.unknown":       "Unknown section",
	"builder.unknown_hint":  "This section type is not supported by this editor version. It will be preserved on save.",
	"builder.enabled":       "Landing page enabled",
	"section.image-gallery.label":       "Image Gallery",
	"section.image-gallery.description": "Add a collection of images",
	"section.text.label":                "Text",
	"section.text.description":          "Add formatted text content",
	"section.links.label":               "Links",
	"section.links.description":         "Add social or professional links",
	"section.skills.label":              "Skills",
	"section.skills.description":        "Showcase your skills and expertise",
	"section.experience.label":          "Experience",
	"section.experience.description":    "Add work or project experience",
	"section.education.label":           "Education",
	"section.education.description":     "Add educational background",
	"section.affiliation.label":         "Affiliation",
	"section.affiliation.description":   "Add organizational affiliations",
	"section.courses.label":             "Courses",
	"section.courses.description":       "Display authored courses",
	"section.hero.label":                "Hero",
	"section.hero.description":          "Large heading with background and buttons",
	"section.text-and-image.label":      "Text and Image",
	"section.text-and-image.description": "Text next to an image",
	"section.logos.label":               "Logos",
	"section.logos.description":         "Row of partner logos",
	"section.people.label":              "People",
	"section.people.description":        "Showcase team members or instructors",
	"section.featured-courses.label":    "Featured Courses",
	"section.featured-courses.description": "Curated course picks",
	"section.heroLeadMagnet.label":      "Hero + Lead Magnet",
	"section.heroLeadMagnet.description": "Hero with email capture card",
	"section.about.label":               "About",
	"section.about.description":         "Who you are and what you do",
	"section.testimonialsGrid.label":    "Testimonials Grid",
	"section.testimonialsGrid.description": "Grid of testimonial cards",
	"section.howItWorks.label":          "How It Works",
	"section.howItWorks.description":    "Step-by-step explanation",
	"section.pricing.label":             "Pricing",
	"section.pricing.description":       "Plans with feature lists",
	"section.trust.label":               "Trust",
	"section.trust.description":         "Reasons to trust you",
	"section.community.label":           "Community",
	"section.community.description":     "Private community pitch",
	"section.faq.label":                 "FAQ",
	"section.faq.description":           "Frequently asked questions",
	"section.finalCta.label":            "Final CTA",
	"section.finalCta.description":      "Closing call to action",
	"section.footer.label":              "Footer",
	"section.footer.description":        "Link columns and newsletter",
}

var spanish = map[string]string{
	"builder.save":         "Guardar cambios",
	"builder.saving":       "Guardando…",
	"builder.saved":        "Cambios guardados correctamente",
	"builder.save_error":   "No se pudieron guardar los cambios",
	"builder.add_section":  "Agregar sección",
	"builder.unknown":      "Sección desconocida",
	"builder.unknown_hint": "Esta versión del editor no soporta este tipo de sección. Se conservará al guardar.",
	"builder.enabled":      "Página de inicio habilitada",
	"section.pricing.label":          "Precios",
	"section.pricing.description":    "Planes con listas de características",
	"section.faq.label":              "Preguntas Frecuentes",
	"section.faq.description":        "Resuelve dudas comunes",
	"section.community.label":        "Comunidad",
	"section.community.description":  "Presenta tu comunidad privada",
	"section.howItWorks.label":       "Cómo Funciona",
	"section.howItWorks.description": "Explicación paso a paso",
	"section.about.label":            "Quiénes Somos",
	"section.about.description":      "Tu historia y propuesta de valor",
}

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForLocale(t *testing.T) {
	t.Run("exact matches", func(t *testing.T) {
		assert.Equal(t, "Save Changes", ForLocale("en").T("builder.save"))
		assert.Equal(t, "Guardar cambios", ForLocale("es").T("builder.save"))
	})

	t.Run("regional variants match their base", func(t *testing.T) {
		assert.Equal(t, "Guardar cambios", ForLocale("es-MX").T("builder.save"))
		assert.Equal(t, "Save Changes", ForLocale("en-GB").T("builder.save"))
	})

	t.Run("unsupported locales fall back to english", func(t *testing.T) {
		assert.Equal(t, "Save Changes", ForLocale("fr").T("builder.save"))
		assert.Equal(t, "Save Changes", ForLocale("").T("builder.save"))
	})
}

func TestT_Fallbacks(t *testing.T) {
	t.Run("spanish falls back to english for untranslated keys", func(t *testing.T) {
		assert.Equal(t, "Hero", ForLocale("es").T("section.hero.label"))
	})

	t.Run("missing keys stay visible", func(t *testing.T) {
		assert.Equal(t, "no.such.key", ForLocale("en").T("no.such.key"))
	})
}

func TestSectionLabels_CoverTheVocabularies(t *testing.T) {
	en := ForLocale("en")
	for _, key := range []string{
		"section.text.label",
		"section.experience.label",
		"section.pricing.label",
		"section.footer.label",
	} {
		assert.NotEqual(t, key, en.T(key), "label missing for %s", key)
	}
}

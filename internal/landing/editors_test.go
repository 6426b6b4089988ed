package landing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"

	"github.com/lumenlearn/pagecraft/internal/i18n"
)

func renderToString(t *testing.T, node cmp.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

func TestEditor_GroupedFieldsets(t *testing.T) {
	tr := i18n.ForLocale("en")

	// These editors group nested structs (CTAs, testimonial, newsletter)
	// in fieldsets with a legend.
	for _, tag := range []string{TypeHeroLeadMagnet, TypeCommunity, TypeFinalCTA, TypeFooter} {
		t.Run(tag, func(t *testing.T) {
			s, ok := NewEmptySection(tag)
			require.True(t, ok)

			out := renderToString(t, Editor(s, "/put", "/op", tr))
			assert.Contains(t, out, "<fieldset")
			assert.Contains(t, out, "<legend")
		})
	}
}

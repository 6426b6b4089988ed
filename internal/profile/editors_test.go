package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
)

func renderToString(t *testing.T, node cmp.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

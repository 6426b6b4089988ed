// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"testing"

	"github.com/lumenlearn/pagecraft/internal/config"
)

// ConfigForTests sets the required environment for config.New via
// t.Setenv so each test gets an isolated, valid configuration.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	t.Setenv("API_BASE_URL", "http://api.test.local")
	t.Setenv("ORG_ID", "org-test")
	t.Setenv("ORG_SLUG", "org-test-slug")
	t.Setenv("USER_ID", "user-test")
	t.Setenv("MEDIA_DIR", t.TempDir())

	return config.New()
}

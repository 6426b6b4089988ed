package ui

import (
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const flashSessionName = "flash-session"

// FlashData carries the success/error notifications surfaced after a
// save attempt. This is the builder's toast analogue.
type FlashData struct {
	Success []string
	Error   []string
}

// NewSessionStore creates the cookie store backing flash messages.
func NewSessionStore(secret string) sessions.Store {
	return sessions.NewCookieStore([]byte(secret))
}

// SetFlashSuccess records a success notification for the next render.
func SetFlashSuccess(c echo.Context, msg string) {
	addFlash(c, "success", msg)
}

// SetFlashError records an error notification for the next render.
func SetFlashError(c echo.Context, msg string) {
	addFlash(c, "error", msg)
}

// GetFlashData consumes and returns any pending notifications.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}
	for _, f := range sess.Flashes("success") {
		if msg, ok := f.(string); ok {
			data.Success = append(data.Success, msg)
		}
	}
	for _, f := range sess.Flashes("error") {
		if msg, ok := f.(string); ok {
			data.Error = append(data.Error, msg)
		}
	}
	// Save clears the consumed flashes from the cookie.
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Warn("Failed to clear flash session", "error", err)
	}
	return data
}

func addFlash(c echo.Context, kind, msg string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(msg, kind)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Warn("Failed to save flash session", "error", err)
	}
}

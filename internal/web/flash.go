package web

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash messages are one-shot: stored in the session, shown on the next
// rendered view, then gone. Reading clears them (gorilla flash semantics).

const (
	flashSuccess = "success"
	flashError   = "error"
)

// Flash carries pending banners into a view.
type Flash struct {
	Success string
	Error   string
}

func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	_ = session.Save()
}

// popFlashes takes and clears pending flash messages.
func popFlashes(c *gin.Context) Flash {
	session := sessions.Default(c)

	var f Flash
	if msgs := session.Flashes(flashSuccess); len(msgs) > 0 {
		if s, ok := msgs[0].(string); ok {
			f.Success = s
		}
	}
	if msgs := session.Flashes(flashError); len(msgs) > 0 {
		if s, ok := msgs[0].(string); ok {
			f.Error = s
		}
	}
	_ = session.Save()
	return f
}

package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Renderer turns a template name plus a view-model map into a response.
// The template engine itself is a collaborator behind this interface;
// handlers never touch it directly, which also keeps them testable
// without any templates on disk.
type Renderer interface {
	HTML(c *gin.Context, status int, name string, data gin.H)
}

// TemplateRenderer renders through gin's html/template integration.
// Templates are loaded once at startup with LoadHTMLGlob.
type TemplateRenderer struct{}

func NewTemplateRenderer() TemplateRenderer {
	return TemplateRenderer{}
}

func (TemplateRenderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

// NotFound is the generic responder for identifiers that do not resolve
// to a record. Never rendered inline by handlers.
func NotFound(c *gin.Context, r Renderer) {
	r.HTML(c, http.StatusNotFound, "error", gin.H{
		"title":   "Not Found",
		"status":  http.StatusNotFound,
		"message": "The requested record could not be found.",
	})
}

// ServerError logs the failure with its request id and renders the
// generic error page. Store failures always end up here; they are never
// retried or handled locally.
func ServerError(c *gin.Context, r Renderer, err error) {
	log.Error().
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("request failed")

	r.HTML(c, http.StatusInternalServerError, "error", gin.H{
		"title":   "Server Error",
		"status":  http.StatusInternalServerError,
		"message": "The server encountered a problem and could not process your request.",
	})
}

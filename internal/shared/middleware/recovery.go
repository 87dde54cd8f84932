package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/shared/render"
)

func Recovery(r render.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				r.HTML(c, http.StatusInternalServerError, "error", gin.H{
					"title":   "Server Error",
					"status":  http.StatusInternalServerError,
					"message": "The server encountered a problem and could not process your request.",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clinitext/engine"
)

// Status reports which cloud collaborators are configured. Everything works
// offline either way; this just tells callers whether results come from the
// cloud or the deterministic fallbacks.
func Status(c *gin.Context, eng *engine.Engine) {
	c.JSON(http.StatusOK, gin.H{
		"cloud_nlp":  eng.CloudNLPEnabled(),
		"summarizer": eng.SummarizerEnabled(),
	})
}

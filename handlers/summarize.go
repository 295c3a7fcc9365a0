package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clinitext/engine"
)

// Summarize returns an extractive summary of the posted text. A missing or
// non-positive max_sentences falls back to the engine default.
func Summarize(c *gin.Context, eng *engine.Engine) {
	var request struct {
		Text         string `json:"text"`
		MaxSentences int    `json:"max_sentences"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary := eng.Summarize(c.Request.Context(), request.Text, request.MaxSentences)
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

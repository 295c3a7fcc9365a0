package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clinitext/engine"
)

// AnalyzeText runs entity, sentiment, and token analysis over the posted text.
func AnalyzeText(c *gin.Context, eng *engine.Engine) {
	var request struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := eng.AnalyzeText(c.Request.Context(), request.Text)
	c.JSON(http.StatusOK, result)
}

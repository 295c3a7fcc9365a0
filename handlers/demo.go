package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clinitext/engine"
	"go-clinitext/types"
)

const demoNote = "Patient John Doe, DOB 1980-05-12, MRN 123456789, presented with fever and cough. " +
	"Symptoms improved after treatment and vitals were stable overnight. " +
	"Dr. Jane Smith recommends follow-up in 2 weeks."

// GetDemoData runs a canned clinical note through all three operations so the
// API can be poked without composing a request body.
func GetDemoData(c *gin.Context, eng *engine.Engine) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, gin.H{
		"note":     demoNote,
		"analysis": eng.AnalyzeText(ctx, demoNote),
		"summary":  eng.Summarize(ctx, demoNote, engine.DefaultMaxSentences),
		"redacted": eng.RedactPHI(demoNote, types.DefaultRedactionOptions()),
	})
}

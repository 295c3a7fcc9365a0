package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-clinitext/engine"
	"go-clinitext/types"
)

// Redact rewrites PHI in the posted text. Each redact_* flag defaults to true
// when absent, so a bare {"text": ...} request redacts everything.
func Redact(c *gin.Context, eng *engine.Engine) {
	var request struct {
		Text        string `json:"text"`
		RedactNames *bool  `json:"redact_names"`
		RedactDates *bool  `json:"redact_dates"`
		RedactIds   *bool  `json:"redact_ids"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := types.DefaultRedactionOptions()
	if request.RedactNames != nil {
		opts.RedactNames = *request.RedactNames
	}
	if request.RedactDates != nil {
		opts.RedactDates = *request.RedactDates
	}
	if request.RedactIds != nil {
		opts.RedactIds = *request.RedactIds
	}

	c.JSON(http.StatusOK, gin.H{"redacted": eng.RedactPHI(request.Text, opts)})
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-clinitext/engine"
	"go-clinitext/handlers"
)

// RequestID tags every request with an X-Request-ID header, keeping one the
// caller already supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func SetupRouter(eng *engine.Engine) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to the clinical text service!",
		})
	})

	// api routes, all backed by the shared engine
	api := r.Group("/api/clinical")
	{
		api.GET("/status", func(c *gin.Context) {
			handlers.Status(c, eng)
		})
		api.GET("/demo", func(c *gin.Context) {
			handlers.GetDemoData(c, eng)
		})
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeText(c, eng)
		})
		api.POST("/summarize", func(c *gin.Context) {
			handlers.Summarize(c, eng)
		})
		api.POST("/redact", func(c *gin.Context) {
			handlers.Redact(c, eng)
		})
	}

	return r
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-clinitext/engine"
	"go-clinitext/nlp"
	"go-clinitext/routes"
	"go-clinitext/summarization"
)

func main() {
	// Load .env file if present; a missing file just means env-only config.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	ctx := context.Background()

	// Cloud NLP is optional. Without credentials the engine runs entirely on
	// its deterministic offline heuristics.
	var collaborator engine.Collaborator
	nlpClient, err := nlp.NewClient(ctx)
	if err != nil {
		log.Printf("Cloud NLP unavailable, running offline: %v", err)
	} else {
		defer nlpClient.Close()
		collaborator = nlpClient
		log.Println("Cloud NLP client ready")
	}

	// OpenAI summarization is optional in the same way.
	var summarizer engine.Summarizer
	openaiSummarizer, err := summarization.NewSummarizer()
	if err != nil {
		log.Printf("Cloud summarization unavailable, using local ranking: %v", err)
	} else {
		summarizer = openaiSummarizer
		log.Println("OpenAI summarizer ready")
	}

	eng := engine.New(collaborator, summarizer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(eng)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv1"
	"cloud.google.com/go/language/apiv1/languagepb"
	"google.golang.org/api/option"

	"go-clinitext/types"
)

// credentialsEnv holds base64-encoded service account JSON for the Cloud
// Natural Language API. When it is missing the client is unavailable and the
// engine runs on its offline heuristics.
const credentialsEnv = "NATURAL_LANGUAGE_CREDENTIALS"

// languageClient is a singleton languageClient instance.
var (
	languageClient *language.Client
	clientErr      error
	clientOnce     sync.Once
)

// Client wraps the Cloud Natural Language API behind the engine's
// collaborator interface.
type Client struct {
	lang *language.Client
}

// NewClient builds a Client from the environment. An error means the cloud
// collaborator is unavailable (missing or bad credentials); callers should
// treat that as "run offline", never as fatal.
func NewClient(ctx context.Context) (*Client, error) {
	lang, err := initLanguageClient(ctx)
	if err != nil {
		return nil, err
	}
	return &Client{lang: lang}, nil
}

// initLanguageClient initializes and returns a shared language client.
func initLanguageClient(ctx context.Context) (*language.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv(credentialsEnv)
		if encodedCreds == "" {
			clientErr = fmt.Errorf("%s not set", credentialsEnv)
			return
		}

		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			clientErr = fmt.Errorf("decode natural language credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, clientErr = language.NewClient(ctx, opt)
	})

	return languageClient, clientErr
}

// DetectSentiment sends text to the Cloud Natural Language API and returns
// the document-level sentiment.
func (c *Client) DetectSentiment(ctx context.Context, text string) (types.Sentiment, error) {
	var sentiment types.Sentiment
	req := &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := c.lang.AnalyzeSentiment(ctx, req)
	if err != nil {
		return sentiment, fmt.Errorf("AnalyzeSentiment error: %w", err)
	}

	sentiment.Score = resp.DocumentSentiment.Score
	sentiment.Magnitude = resp.DocumentSentiment.Magnitude

	return sentiment, nil
}

// DetectEntities sends text to the Cloud Natural Language API to extract
// named entities and returns a slice of Entity structs along with any error
// encountered.
func (c *Client) DetectEntities(ctx context.Context, text string) ([]types.Entity, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := c.lang.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	var entities []types.Entity
	for _, e := range resp.Entities {
		entities = append(entities, types.Entity{
			Name:     e.Name,
			Type:     e.Type.String(),
			Salience: e.Salience,
		})
	}
	return entities, nil
}

// Close releases the underlying language client.
func (c *Client) Close() {
	if c.lang != nil {
		c.lang.Close()
	}
}

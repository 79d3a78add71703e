package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gameforge/internal/interfaces"

	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ImageClient generates illustrations with the OpenAI images API.
type ImageClient struct {
	client *openaigo.Client
	model  string
	logger *zap.Logger
}

var _ interfaces.ImageGenerator = (*ImageClient)(nil)

func NewImageClient(apiKey, baseURL string, timeout time.Duration, logger *zap.Logger) *ImageClient {
	cfg := openaigo.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &ImageClient{
		client: openaigo.NewClientWithConfig(cfg),
		model:  openaigo.CreateImageModelDallE3,
		logger: logger.Named("ImageClient"),
	}
}

// GenerateImageURL returns a temporary URL of one 1024x1024 image.
func (c *ImageClient) GenerateImageURL(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.CreateImage(ctx, openaigo.ImageRequest{
		Prompt:         prompt,
		Model:          c.model,
		N:              1,
		Size:           openaigo.CreateImageSize1024x1024,
		Quality:        openaigo.CreateImageQualityStandard,
		ResponseFormat: openaigo.CreateImageResponseFormatURL,
	})
	duration := time.Since(start)
	if err != nil {
		aiRequestsTotal.WithLabelValues(c.model, "error").Inc()
		c.logger.Error("Image generation failed", zap.Duration("duration", duration), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrAIGenerationFailed, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		aiRequestsTotal.WithLabelValues(c.model, "error_empty_response").Inc()
		return "", fmt.Errorf("%w: no image returned", ErrAIGenerationFailed)
	}
	aiRequestsTotal.WithLabelValues(c.model, "success").Inc()
	aiRequestDuration.WithLabelValues(c.model).Observe(duration.Seconds())
	c.logger.Debug("Image generated", zap.Duration("duration", duration))
	return resp.Data[0].URL, nil
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultCaptionURL is the image-captioning model endpoint used when no
// override is configured.
const DefaultCaptionURL = "https://api-inference.huggingface.co/models/microsoft/git-base"

const captionTimeout = 30 * time.Second

// CaptionService calls an external image-captioning endpoint. The one
// network call carries a bounded timeout and is never retried.
type CaptionService struct {
	apiURL string
	apiKey string
	client *http.Client
	log    *logrus.Logger
}

// NewCaptionService creates a caption client for the given endpoint and
// bearer key. An empty apiURL falls back to DefaultCaptionURL.
func NewCaptionService(apiURL, apiKey string, log *logrus.Logger) *CaptionService {
	if apiURL == "" {
		apiURL = DefaultCaptionURL
	}
	return &CaptionService{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: captionTimeout},
		log:    log,
	}
}

type captionRequest struct {
	Inputs string `json:"inputs"`
}

type captionResult struct {
	GeneratedText string `json:"generated_text"`
}

// Caption sends a base64-encoded image and returns the generated
// caption text. Failures map onto ErrInvalidCredentials,
// ErrCaptionTimeout, ErrCaptionNetwork, or an UpstreamError carrying
// the service's own message.
func (s *CaptionService) Caption(ctx context.Context, imageBase64 string) (string, error) {
	payload, err := json.Marshal(captionRequest{Inputs: imageBase64})
	if err != nil {
		return "", fmt.Errorf("failed to marshal caption request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create caption request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrCaptionTimeout
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return "", ErrCaptionTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrCaptionNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCaptionNetwork, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var upstream struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &upstream)
		s.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"error":  upstream.Error,
		}).Warn("caption service returned an error")
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: upstream.Error}
	}

	var results []captionResult
	if err := json.Unmarshal(body, &results); err != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: "malformed caption response"}
	}
	if len(results) == 0 || results[0].GeneratedText == "" {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: "caption service returned no caption"}
	}

	return results[0].GeneratedText, nil
}

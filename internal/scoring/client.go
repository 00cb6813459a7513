// Package scoring holds the contract with the external resume scoring
// service. The service computes every score out of band; this package only
// forwards submissions to it.
package scoring

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
)

// ErrSubmissionFailed reports that the scoring service did not accept a
// forwarded submission. The candidate row already exists at that point and
// is kept; scores simply stay null until scoring is re-triggered.
var ErrSubmissionFailed = errors.New("scoring service rejected the submission")

// Submission is the payload forwarded to the scoring service after intake.
type Submission struct {
	JobID    uint
	FullName string
	Email    string
	FileName string
	Resume   []byte
}

// ScoreProvider is the capability interface the intake path depends on.
// Tests substitute a recording fake.
type ScoreProvider interface {
	SubmitResume(ctx context.Context, sub Submission) error
}

// Client forwards submissions to the scoring service over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClientFromEnv builds a client against SCORER_URL.
func NewClientFromEnv() *Client {
	return &Client{
		BaseURL:    os.Getenv("SCORER_URL"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SubmitResume posts the submission as multipart form data to the scoring
// service's ingest endpoint. Any non-2xx response maps to ErrSubmissionFailed.
func (c *Client) SubmitResume(ctx context.Context, sub Submission) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("fullName", sub.FullName); err != nil {
		return fmt.Errorf("failed to build submission payload: %v", err)
	}
	if err := writer.WriteField("email", sub.Email); err != nil {
		return fmt.Errorf("failed to build submission payload: %v", err)
	}
	if err := writer.WriteField("jobId", strconv.FormatUint(uint64(sub.JobID), 10)); err != nil {
		return fmt.Errorf("failed to build submission payload: %v", err)
	}

	part, err := writer.CreateFormFile("resume", sub.FileName)
	if err != nil {
		return fmt.Errorf("failed to build submission payload: %v", err)
	}
	if _, err := part.Write(sub.Resume); err != nil {
		return fmt.Errorf("failed to build submission payload: %v", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to build submission payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/submit-resume", body)
	if err != nil {
		return fmt.Errorf("failed to build submission request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: scorer responded with status %d", ErrSubmissionFailed, resp.StatusCode)
	}

	return nil
}

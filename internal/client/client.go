// Package client is the HTTP client for the reviewer API, implementing the
// three remote calls the workflow and assistant controllers consume.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"resumeai/reviewer/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// UploadResume sends the raw PDF bytes and returns the parsed record.
func (c *Client) UploadResume(ctx context.Context, filename string, data []byte) (*models.ResumeRecord, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var response models.UploadResponse
	if err := c.do(req, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("upload response contained no resume record")
	}

	return response.Data, nil
}

// AnalyzeResume submits the parsed record and target role for analysis.
func (c *Client) AnalyzeResume(ctx context.Context, record *models.ResumeRecord, targetRole string) (*models.AnalysisResult, error) {
	payload := models.AnalyzeRequest{
		ResumeData: record,
		TargetRole: targetRole,
	}

	var result models.AnalysisResult
	if err := c.postJSON(ctx, "/api/v1/analyze", payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// MentorReply sends one chat message plus optional context and returns the
// mentor's reply text.
func (c *Client) MentorReply(ctx context.Context, message, userContext string) (string, error) {
	payload := models.ChatRequest{
		Message: message,
		Context: userContext,
	}

	var response models.ChatResponse
	if err := c.postJSON(ctx, "/api/v1/chat", payload, &response); err != nil {
		return "", err
	}

	return response.Reply, nil
}

// Roles fetches the role catalog.
func (c *Client) Roles(ctx context.Context) ([]models.Role, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/roles", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build roles request: %w", err)
	}

	var roles []models.Role
	if err := c.do(req, &roles); err != nil {
		return nil, err
	}

	return roles, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, target interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr models.ErrorResponse
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeai/reviewer/internal/models"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New(server.URL, 5*time.Second), server
}

func TestClient_UploadResume(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotFilename string
		var gotData []byte

		c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v1/upload", r.URL.Path)

			file, header, err := r.FormFile("resume")
			require.NoError(t, err)
			defer file.Close()
			gotFilename = header.Filename
			gotData, err = io.ReadAll(file)
			require.NoError(t, err)

			response := models.UploadResponse{
				Message: "Resume parsed successfully",
				Data: &models.ResumeRecord{
					Metadata: models.ResumeMetadata{Filename: header.Filename, PageCount: 2},
					RawText:  "hello",
				},
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(response)
		}))
		defer server.Close()

		record, err := c.UploadResume(context.Background(), "resume.pdf", []byte("%PDF-1.4 data"))
		require.NoError(t, err)
		assert.Equal(t, "resume.pdf", gotFilename)
		assert.Equal(t, []byte("%PDF-1.4 data"), gotData)
		assert.Equal(t, 2, record.Metadata.PageCount)
	})

	t.Run("surfaces the server error message", func(t *testing.T) {
		c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Failed to parse resume"})
		}))
		defer server.Close()

		_, err := c.UploadResume(context.Background(), "resume.pdf", []byte("x"))
		require.Error(t, err)
		assert.Equal(t, "Failed to parse resume", err.Error())
	})

	t.Run("missing record is an error", func(t *testing.T) {
		c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.UploadResponse{Message: "ok"})
		}))
		defer server.Close()

		_, err := c.UploadResume(context.Background(), "resume.pdf", []byte("x"))
		assert.Error(t, err)
	})
}

func TestClient_AnalyzeResume(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v1/analyze", r.URL.Path)

			var req models.AnalyzeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Backend Developer", req.TargetRole)
			require.NotNil(t, req.ResumeData)

			json.NewEncoder(w).Encode(models.AnalysisResult{
				OverallScore: 72,
				TargetRole:   req.TargetRole,
				SkillGap:     models.SkillGap{MatchPercentage: 31.25},
			})
		}))
		defer server.Close()

		record := &models.ResumeRecord{RawText: "skills: sql"}
		result, err := c.AnalyzeResume(context.Background(), record, "Backend Developer")
		require.NoError(t, err)
		assert.Equal(t, 72.0, result.OverallScore)
		assert.Equal(t, 31.25, result.SkillGap.MatchPercentage)
	})

	t.Run("surfaces the server error message", func(t *testing.T) {
		c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Failed to analyze resume"})
		}))
		defer server.Close()

		_, err := c.AnalyzeResume(context.Background(), &models.ResumeRecord{}, "Backend Developer")
		require.Error(t, err)
		assert.Equal(t, "Failed to analyze resume", err.Error())
	})
}

func TestClient_MentorReply(t *testing.T) {
	t.Run("sends message and context", func(t *testing.T) {
		c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v1/chat", r.URL.Path)

			var req models.ChatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "what next?", req.Message)
			assert.Equal(t, "Target role: Backend Developer", req.Context)

			json.NewEncoder(w).Encode(models.ChatResponse{Reply: "Learn Flask."})
		}))
		defer server.Close()

		reply, err := c.MentorReply(context.Background(), "what next?", "Target role: Backend Developer")
		require.NoError(t, err)
		assert.Equal(t, "Learn Flask.", reply)
	})

	t.Run("non-json error body falls back to status", func(t *testing.T) {
		c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		_, err := c.MentorReply(context.Background(), "hi", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestClient_Roles(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/roles", r.URL.Path)
		json.NewEncoder(w).Encode(models.RoleCatalog)
	}))
	defer server.Close()

	roles, err := c.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 6)
	assert.Equal(t, "Frontend Developer", roles[0].Title)
}

func TestClient_ConnectionRefused(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second)

	_, err := c.Roles(context.Background())
	assert.Error(t, err)
}

package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["resume"][0]
}

func TestStorageService(t *testing.T) {
	t.Run("saves pdf under a unique name", func(t *testing.T) {
		dir := t.TempDir()
		svc := NewStorageService(dir)
		require.NoError(t, svc.EnsureUploadDir())

		filename, path, err := svc.SaveFile(fileHeader(t, "resume.pdf", []byte("%PDF-1.4 content")))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(filename, "resume_"))
		assert.True(t, strings.HasSuffix(filename, ".pdf"))
		assert.Equal(t, filepath.Join(dir, filename), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 content"), data)
	})

	t.Run("rejects non-pdf extensions", func(t *testing.T) {
		svc := NewStorageService(t.TempDir())

		_, _, err := svc.SaveFile(fileHeader(t, "resume.docx", []byte("x")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only PDF allowed")
	})

	t.Run("delete removes the stored file", func(t *testing.T) {
		dir := t.TempDir()
		svc := NewStorageService(dir)

		filename, path, err := svc.SaveFile(fileHeader(t, "resume.pdf", []byte("x")))
		require.NoError(t, err)

		require.NoError(t, svc.DeleteFile(filename))
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		assert.Error(t, svc.DeleteFile("missing.pdf"))
	})

	t.Run("get file path joins the upload dir", func(t *testing.T) {
		svc := NewStorageService("/var/uploads")
		assert.Equal(t, filepath.Join("/var/uploads", "a.pdf"), svc.GetFilePath("a.pdf"))
	})
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	apphttp "github.com/HarshvardhanPondkule/InventoTrack/internal/interfaces/http"
)

// fakeUploader records calls and lets the test set the outcome.
type fakeUploader struct {
	uploadErr    error
	deleteErr    error
	lastFilename string
	lastPublicID string
	lastContent  []byte
}

func (u *fakeUploader) Upload(_ context.Context, file io.Reader, filename string) (*dto.UploadData, error) {
	if u.uploadErr != nil {
		return nil, u.uploadErr
	}
	u.lastFilename = filename
	u.lastContent, _ = io.ReadAll(file)
	return &dto.UploadData{
		URL:      "https://cdn.example.com/inventotrack/" + filename,
		PublicID: "inventotrack/" + filename,
		Format:   "png",
		Bytes:    len(u.lastContent),
	}, nil
}

func (u *fakeUploader) Delete(_ context.Context, publicID string) error {
	if u.deleteErr != nil {
		return u.deleteErr
	}
	u.lastPublicID = publicID
	return nil
}

func buildUploadApp(uploader *fakeUploader) *fiber.App {
	app := fiber.New()
	h := apphttp.NewUploadHandler(uploader)
	app.Post("/uploads", h.Upload)
	app.Delete("/uploads/:publicId", h.Delete)
	return app
}

func multipartBody(t *testing.T, fieldName, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpload_ForwardsFileToProvider(t *testing.T) {
	uploader := &fakeUploader{}
	app := buildUploadApp(uploader)

	body, contentType := multipartBody(t, "file", "pipe.png", []byte("fake-image-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	require.NotNil(t, out.Data)
	assert.Equal(t, "inventotrack/pipe.png", out.Data.PublicID)

	assert.Equal(t, "pipe.png", uploader.lastFilename)
	assert.Equal(t, []byte("fake-image-bytes"), uploader.lastContent)
}

func TestUpload_NoFileReturns400(t *testing.T) {
	app := buildUploadApp(&fakeUploader{})

	req := httptest.NewRequest(http.MethodPost, "/uploads", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Equal(t, "No file provided", out.Error)
}

func TestUpload_WrongFieldNameReturns400(t *testing.T) {
	app := buildUploadApp(&fakeUploader{})

	body, contentType := multipartBody(t, "image", "pipe.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpload_ProviderFailureReturns500(t *testing.T) {
	uploader := &fakeUploader{uploadErr: errors.New("provider unreachable")}
	app := buildUploadApp(uploader)

	body, contentType := multipartBody(t, "file", "pipe.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
}

func TestDeleteUpload_ForwardsPublicID(t *testing.T) {
	uploader := &fakeUploader{}
	app := buildUploadApp(uploader)

	req := httptest.NewRequest(http.MethodDelete, "/uploads/asset-123", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "asset-123", uploader.lastPublicID)
}

func TestDeleteUpload_ProviderFailureReturns500(t *testing.T) {
	uploader := &fakeUploader{deleteErr: errors.New("provider unreachable")}
	app := buildUploadApp(uploader)

	req := httptest.NewRequest(http.MethodDelete, "/uploads/asset-123", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

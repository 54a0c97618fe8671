package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jasit-store/libs"
	"jasit-store/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAdminRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := libs.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	ctrl := NewProductController(services.NewProductService(catalog{}, nil, storage, zap.NewNop()), 1<<20)
	r := gin.New()
	r.POST("/admin/products", ctrl.CreateProduct)
	r.POST("/admin/uploads", ctrl.UploadImage)
	return r, dir
}

func multipartForm(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func post(r http.Handler, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct_WithImage(t *testing.T) {
	r, dir := newAdminRouter(t)
	body, ct := multipartForm(t, map[string]string{
		"name": "Instalasi Jaringan", "price": "2500000", "category": "Infrastruktur", "features": "Survey lokasi",
	}, "jaringan.PNG", []byte("png-bytes"))

	w := post(r, "/admin/products", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ImageURL string   `json:"image_url"`
			Price    string   `json:"price"`
			Features []string `json:"features"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Data.ImageURL, "/uploads/product-images/"))
	assert.True(t, strings.HasSuffix(resp.Data.ImageURL, ".png"))
	assert.Equal(t, "2500000", resp.Data.Price)
	assert.Equal(t, []string{"Survey lokasi"}, resp.Data.Features)

	stored, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(resp.Data.ImageURL, "/uploads/"))))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))
}

func TestCreateProduct_RejectsBadInput(t *testing.T) {
	r, _ := newAdminRouter(t)

	body, ct := multipartForm(t, map[string]string{"name": "Instalasi", "price": "100", "category": "Web"}, "malware.exe", []byte("x"))
	w := post(r, "/admin/products", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, ct = multipartForm(t, map[string]string{"name": "Instalasi", "price": "-5", "category": "Web"}, "", nil)
	w = post(r, "/admin/products", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Harga tidak boleh negatif")
}

func TestUploadImage(t *testing.T) {
	r, _ := newAdminRouter(t)

	body, ct := multipartForm(t, nil, "", nil)
	w := post(r, "/admin/uploads", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File gambar wajib diunggah")

	body, ct = multipartForm(t, nil, "logo.webp", []byte("webp"))
	w = post(r, "/admin/uploads", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"/uploads/product-images/`)
}

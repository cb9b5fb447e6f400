package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"huffzip_go/internal/handler"
	"huffzip_go/internal/repo"
	"huffzip_go/internal/router"
	"huffzip_go/internal/service"
	"huffzip_go/pkg/logger"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewCodecService(repo.NewJobRepoInMemory(), logger.New())
	r := gin.New()
	router.Register(r, router.Dependencies{CodecHandler: handler.NewCodecHandler(svc)})
	return r
}

func do(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCompressDecompressEndpoints(t *testing.T) {
	r := newTestRouter()
	input := []byte("huffman coding is simple")

	w := do(r, http.MethodPost, "/api/v1/compress", input)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Job-Id"))
	encoded := w.Body.Bytes()

	w = do(r, http.MethodPost, "/api/v1/decompress", encoded)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, input, w.Body.Bytes())
}

func TestDecompressRejectsGarbage(t *testing.T) {
	r := newTestRouter()
	w := do(r, http.MethodPost, "/api/v1/decompress", []byte{0xba, 0xad})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobEndpoints(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/api/v1/compress", []byte("abc"))
	require.Equal(t, http.StatusOK, w.Code)
	jobID := w.Header().Get("X-Job-Id")

	w = do(r, http.MethodGet, "/api/v1/jobs/"+jobID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/jobs/unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()
	w := do(r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

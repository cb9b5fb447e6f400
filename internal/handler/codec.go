package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"huffzip_go/internal/repo"
	"huffzip_go/internal/service"
	"huffzip_go/pkg/huffman"
)

type CodecHandler struct {
	svc *service.CodecService
}

func NewCodecHandler(s *service.CodecService) *CodecHandler {
	return &CodecHandler{svc: s}
}

func (h *CodecHandler) Compress(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, job, err := h.svc.Compress(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Job-Id", job.ID)
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *CodecHandler) Decompress(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, job, err := h.svc.Decompress(data)
	if err != nil {
		if errors.Is(err, huffman.ErrFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Job-Id", job.ID)
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func (h *CodecHandler) GetJob(c *gin.Context) {
	id := c.Param("id")
	j, err := h.svc.GetJob(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *CodecHandler) ListJobs(c *gin.Context) {
	jobs, err := h.svc.ListJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

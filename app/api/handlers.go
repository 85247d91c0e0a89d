package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/rss-duo/app/feed"
)

func NewHandler(loader NewsLoaderInterface, version string) *Handler {
	return &Handler{
		loader:  loader,
		version: version,
	}
}

// GetNews runs one load of both feeds per request.
func (h *Handler) GetNews(c *gin.Context) {
	left, right := h.loader.Sources()

	switch s := h.loader.Run(c.Request.Context()).(type) {
	case feed.Ready:
		c.Header("X-Left-Items", strconv.Itoa(len(s.Left)))
		c.Header("X-Right-Items", strconv.Itoa(len(s.Right)))
		c.JSON(http.StatusOK, newsResponse{
			State: "ready",
			Left:  &column{Name: left.Name, URL: left.URL, Articles: s.Left},
			Right: &column{Name: right.Name, URL: right.URL, Articles: s.Right},
		})

	case feed.Failed:
		slog.Error("News request failed", "error", s.Message)
		c.JSON(http.StatusBadGateway, newsResponse{
			State: "failed",
			Error: s.Message,
			Kind:  failureKind(s.Err),
		})

	default:
		slog.Error("Loader returned unexpected state", "state", s)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected loader state"})
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	left, right := h.loader.Sources()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
		"feeds":     []string{left.URL, right.URL},
	})
}

func failureKind(err error) string {
	var netErr *feed.NetworkError
	var parseErr *feed.ParseError

	switch {
	case errors.As(err, &netErr):
		return "network"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return ""
	}
}

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EdwardCranko/PDF-Squeeze/internal/common"
	"github.com/EdwardCranko/PDF-Squeeze/internal/container"
	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

// HandleHealth reports service liveness.
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleCompress accepts a multipart "pdf" upload plus optional "quality",
// "scale" and "optimize" form fields, and responds with the compressed
// document. Original and compressed sizes travel in response headers.
func HandleCompress(c *gin.Context, deps *container.Container) {
	file, header, err := c.Request.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := deps.GetCompressionService().CompressBytes(c.Request.Context(), data, opts)
	if err != nil {
		status := http.StatusInternalServerError
		var loadErr *domain.LoadError
		switch {
		case errors.As(err, &loadErr):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrCancelled):
			// Client went away mid-run.
			status = 499
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.Header("X-Original-Size", strconv.Itoa(len(data)))
	c.Header("X-Compressed-Size", strconv.Itoa(len(out)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", common.CompressedName(header.Filename)))
	c.Data(http.StatusOK, "application/pdf", out)
}

// HandleGetPreferences returns the stored default options.
func HandleGetPreferences(c *gin.Context, deps *container.Container) {
	prefsService := deps.GetPreferencesService()
	if prefsService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Preferences storage not configured"})
		return
	}

	prefs, err := prefsService.GetPreferences()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// HandleUpdatePreferences merges the posted fields into stored preferences.
func HandleUpdatePreferences(c *gin.Context, deps *container.Container) {
	prefsService := deps.GetPreferencesService()
	if prefsService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Preferences storage not configured"})
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if err := prefsService.UpdatePreferences(data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func parseOptions(c *gin.Context) (domain.Options, error) {
	opts := domain.DefaultOptions()

	if v := c.PostForm("quality"); v != "" {
		quality, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid quality %q", v)
		}
		opts.Quality = quality
	}
	if v := c.PostForm("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid scale %q", v)
		}
		opts.Scale = scale
	}
	if v := c.PostForm("optimize"); v != "" {
		optimize, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid optimize %q", v)
		}
		opts.PostOptimize = optimize
	}

	return opts.Normalized(), nil
}

package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/news-comments-api/internal/config"
)

// spaHandler serves the built frontend: a matching file under the static
// directory, otherwise the single entry document so client-side routing
// works on hard reloads.
func spaHandler(cfg *config.ServerConfig) gin.HandlerFunc {
	staticRoot, _ := filepath.Abs(cfg.StaticDir)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, errorBody("not_found", "route not found"))
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, errorBody("not_found", "route not found"))
			return
		}

		requested := filepath.Join(staticRoot, filepath.Clean("/"+c.Request.URL.Path))
		if !strings.HasPrefix(requested, staticRoot) {
			c.Status(http.StatusNotFound)
			return
		}

		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		c.File(cfg.IndexFile)
	}
}

package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/platform/apperr"
	"hrms-backend/internal/platform/httpx"
)

// SPA serves the frontend build from fsys. Unknown non-API paths fall back
// to index.html so client-side routes survive a reload. Unknown /api/ paths
// get the JSON error envelope. A nil fsys serves no files.
func SPA(fsys fs.FS) gin.HandlerFunc {
	var fileFS http.FileSystem
	if fsys != nil {
		fileFS = http.FS(fsys)
	}

	return func(c *gin.Context) {
		// API は対象外
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			httpx.WriteError(c, apperr.ErrNotFound("route not found"))
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}

		reqPath := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
		if reqPath == "" {
			reqPath = "index.html"
		}

		// 実ファイルがあるならそれを返す（index.html 以外はキャッシュ）
		if serveFile(c, fileFS, reqPath, !strings.HasSuffix(reqPath, "index.html")) {
			return
		}
		// なければ index.html にフォールバック
		if serveFile(c, fileFS, "index.html", false) {
			return
		}
		c.Status(http.StatusNotFound)
	}
}

func serveFile(c *gin.Context, fsys http.FileSystem, name string, cache bool) bool {
	if fsys == nil {
		return false
	}
	f, err := fsys.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return true
	}
	if info.IsDir() {
		return false
	}
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		c.Header("Content-Type", ct)
	}
	if cache {
		c.Header("Cache-Control", "public, max-age=86400, immutable")
	}
	http.ServeContent(c.Writer, c.Request, name, info.ModTime(), f)
	return true
}

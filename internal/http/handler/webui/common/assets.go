package common

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/pkg/errors"
)

//go:embed assets
var assetsFS embed.FS

// NewHandler serves the embedded static assets (stylesheet and the
// visited-lists script). Mounted under /assets/.
func NewHandler() http.Handler {
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return http.FileServer(http.FS(assets))
}

package component

import (
	"context"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/checklist/internal/http/context"
)

// BaseURL resolves an application path against the configured base URL so
// links keep working when the app is served under a path prefix.
func BaseURL(ctx context.Context, path string) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	return templ.SafeURL(baseURL.JoinPath(path).String())
}

package setup

import (
	"context"
	nethttp "net/http"

	"github.com/bornholm/checklist/internal/config"
	"github.com/bornholm/checklist/internal/http"
	"github.com/bornholm/checklist/internal/http/handler/metrics"
	"github.com/bornholm/checklist/internal/http/handler/webui"
	"github.com/bornholm/checklist/internal/http/handler/webui/common"
	"github.com/bornholm/checklist/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	listManager, err := getListManager(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create list manager from config")
	}

	assets := common.NewHandler()

	var ui nethttp.Handler = webui.NewHandler(listManager)

	if conf.HTTP.RateLimit.Enabled {
		middleware := ratelimit.Middleware(
			ratelimit.WithTrustHeaders(conf.HTTP.RateLimit.TrustHeaders),
			ratelimit.WithLimit(conf.HTTP.RateLimit.Interval, conf.HTTP.RateLimit.MaxBurst),
			ratelimit.WithCache(conf.HTTP.RateLimit.CacheSize, conf.HTTP.RateLimit.TTL),
		)

		ui = middleware(ui)
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/assets/", assets),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/", ui),
	}

	server := http.NewServer(options...)

	return server, nil
}

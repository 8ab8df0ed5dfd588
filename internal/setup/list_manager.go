package setup

import (
	"context"

	"github.com/bornholm/checklist/internal/config"
	"github.com/bornholm/checklist/internal/core/service"
	"github.com/bornholm/checklist/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var getListManager = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ListManager, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	prometheus.MustRegister(metrics.NewStoreCollector(store))

	listManager := service.NewListManager(
		service.WithListManagerStore(store),
	)

	return listManager, nil
})

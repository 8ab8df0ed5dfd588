package metrics

import (
	"context"
	"log/slog"

	"github.com/bornholm/checklist/internal/core/port"
	"github.com/prometheus/client_golang/prometheus"
)

// StoreCollector exposes the current number of lists and items as gauges,
// read from the store at scrape time.
type StoreCollector struct {
	store port.Store
	lists *prometheus.Desc
	items *prometheus.Desc
}

func NewStoreCollector(store port.Store) *StoreCollector {
	return &StoreCollector{
		store: store,
		lists: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "lists"),
			"Current number of lists",
			nil, nil,
		),
		items: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "items"),
			"Current number of items",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.lists
	ch <- c.items
}

// Collect implements prometheus.Collector.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	totalLists, err := c.store.CountLists(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not count lists", slog.Any("error", err))
		return
	}

	totalItems, err := c.store.CountItems(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not count items", slog.Any("error", err))
		return
	}

	ch <- prometheus.MustNewConstMetric(c.lists, prometheus.GaugeValue, float64(totalLists))
	ch <- prometheus.MustNewConstMetric(c.items, prometheus.GaugeValue, float64(totalItems))
}

var _ prometheus.Collector = &StoreCollector{}

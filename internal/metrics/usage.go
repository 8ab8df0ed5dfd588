package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalCreatedLists = "total_created_lists"
	NameTotalDeletedLists = "total_deleted_lists"
	NameTotalCreatedItems = "total_created_items"
	NameTotalEditedItems  = "total_edited_items"
	NameTotalDeletedItems = "total_deleted_items"
)

var TotalCreatedLists = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalCreatedLists,
		Help:      "Total created lists",
		Namespace: Namespace,
	},
)

var TotalDeletedLists = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalDeletedLists,
		Help:      "Total deleted lists",
		Namespace: Namespace,
	},
)

var TotalCreatedItems = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalCreatedItems,
		Help:      "Total created items",
		Namespace: Namespace,
	},
)

var TotalEditedItems = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalEditedItems,
		Help:      "Total edited items",
		Namespace: Namespace,
	},
)

var TotalDeletedItems = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalDeletedItems,
		Help:      "Total removed items",
		Namespace: Namespace,
	},
)

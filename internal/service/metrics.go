package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	narrativeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gameforge_narrative_operations_total",
			Help: "Narrative operations by operation and outcome.",
		},
		[]string{"operation", "status"},
	)
	gamesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gameforge_games_created_total",
			Help: "Games created, partitioned by creation mode.",
		},
		[]string{"mode"},
	)
	imageTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gameforge_image_tasks_total",
			Help: "Image tasks processed, partitioned by subject and outcome.",
		},
		[]string{"subject", "status"},
	)
)

const (
	opView       = "view"
	opRegenerate = "regenerate"
	opCommit     = "commit"
)

func observeNarrative(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	narrativeOperationsTotal.WithLabelValues(operation, status).Inc()
}

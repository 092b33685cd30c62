package presentation

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/RaikyD/order-notify-service/internal/domain"
	"github.com/RaikyD/order-notify-service/internal/logger"
)

//go:embed web/*
var webFS embed.FS

var trackingTmpl = template.Must(template.ParseFS(webFS, "web/tracking.html"))

type trackingStage struct {
	Label     string
	Completed bool
}

type trackingView struct {
	ID     string
	Name   string
	Status string
	Found  bool
	Stages []trackingStage
}

// RenderTracking writes the tracking page for ord, or the "no tracking
// info" page when ord is nil. Always 200; a status outside the fixed
// sequence just renders with no stage completed.
func RenderTracking(w http.ResponseWriter, id string, ord *domain.Order) {
	view := trackingView{ID: id}
	if ord != nil {
		view.Found = true
		view.Name = ord.Name
		view.Status = string(ord.Status)

		idx := domain.StageIndex(ord.Status)
		for i, st := range domain.Stages {
			view.Stages = append(view.Stages, trackingStage{
				Label:     string(st),
				Completed: idx >= 0 && i <= idx,
			})
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := trackingTmpl.Execute(w, view); err != nil {
		logger.Warn("tracking render failed", "order", id, "err", err)
	}
}

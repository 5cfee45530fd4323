package controllers

import (
	"fmt"
	"net/http"
	"ntd/internal/cache"
	"ntd/internal/services"
	"time"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	account   services.AccountServiceInterface
	reset     services.ResetServiceInterface
	images    *cache.ImageCache
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	ActiveScope   string  `json:"active_scope"`
	LastResetDate string  `json:"last_reset_date"`
	CachedImages  int     `json:"cached_images"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		ActiveScope:   hc.account.ActiveScope(),
		LastResetDate: hc.reset.LastResetDate(),
		CachedImages:  hc.images.Len(),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(account services.AccountServiceInterface, reset services.ResetServiceInterface, images *cache.ImageCache) *HealthController {
	return &HealthController{
		account:   account,
		reset:     reset,
		images:    images,
		startTime: time.Now(),
	}
}

package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"mysterydinner_server/services"
)

// MatchmakingRunner is the slice of MatchmakingService the controller needs.
type MatchmakingRunner interface {
	Run(ctx context.Context) (*services.RunReport, error)
}

// MatchmakingController handles HTTP requests that trigger matchmaking runs
type MatchmakingController struct {
	Service MatchmakingRunner
}

// NewMatchmakingController creates a new MatchmakingController instance
func NewMatchmakingController(service MatchmakingRunner) *MatchmakingController {
	return &MatchmakingController{Service: service}
}

// TriggerRun executes one matchmaking pass. No payload is required; the
// caller always receives a structured summary. Partial success (some groups
// failed) still reports success with a shorter events list; only a failed
// pool read returns 500.
func (mc *MatchmakingController) TriggerRun(w http.ResponseWriter, r *http.Request) {
	report, err := mc.Service.Run(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": report.Message,
	}
	if !report.Skipped {
		events := report.EventsCreated
		if events == nil {
			events = []services.MaterializedEvent{}
		}
		response["events"] = events
	}
	if len(report.Failures) > 0 {
		response["failures"] = report.Failures
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

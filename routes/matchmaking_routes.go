package routes

import (
	"mysterydinner_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterMatchmakingRoutes sets up routes for the matchmaking job under /api/matchmaking
func RegisterMatchmakingRoutes(r *mux.Router, runner controllers.MatchmakingRunner) {
	controller := controllers.NewMatchmakingController(runner)

	matchmakingRouter := r.PathPrefix("/api/matchmaking").Subrouter()

	matchmakingRouter.HandleFunc("/run", controller.TriggerRun).Methods("POST")
}

package controllers

import (
	"encoding/json"
	"net/http"

	"mysterydinner_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles HTTP requests for profile reads
type UserProfileController struct {
	Service *services.UserProfileService
}

// NewUserProfileController creates a new UserProfileController instance
func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{Service: service}
}

// GetProfile handles fetching a single profile by userId
func (uc *UserProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	profile, err := uc.Service.GetProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"profile": profile,
	})
}

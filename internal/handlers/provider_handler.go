package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sevaBack/internal/models"
	"sevaBack/internal/services"
)

type ProviderHandler struct {
	Service *services.ProviderService
}

func (h *ProviderHandler) RegisterProvider(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Services) == 0 && req.Service != "" {
		req.Services = []string{req.Service}
	}

	provider, err := h.Service.RegisterProvider(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, "RegisterProvider")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(provider)
}

// GetNearbyProviders serves the discovery search: active providers within
// maxDistance km of the query point, optionally narrowed to one category.
func (h *ProviderHandler) GetNearbyProviders(w http.ResponseWriter, r *http.Request) {
	latStr := r.URL.Query().Get("latitude")
	lonStr := r.URL.Query().Get("longitude")
	if latStr == "" || lonStr == "" {
		http.Error(w, "Latitude and longitude required", http.StatusBadRequest)
		return
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		http.Error(w, "Invalid latitude", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		http.Error(w, "Invalid longitude", http.StatusBadRequest)
		return
	}

	radiusKm := float64(services.DefaultSearchRadiusKm)
	if maxStr := r.URL.Query().Get("maxDistance"); maxStr != "" {
		radiusKm, err = strconv.ParseFloat(maxStr, 64)
		if err != nil {
			http.Error(w, "Invalid maxDistance", http.StatusBadRequest)
			return
		}
	}

	results, err := h.Service.SearchNearby(r.Context(), lon, lat, radiusKm, r.URL.Query().Get("service"))
	if err != nil {
		handleServiceError(w, err, "GetNearbyProviders")
		return
	}
	json.NewEncoder(w).Encode(results)
}

func (h *ProviderHandler) GetProviderByPhone(w http.ResponseWriter, r *http.Request) {
	phone := getParam(r, "phone")
	if phone == "" {
		http.Error(w, "Phone required", http.StatusBadRequest)
		return
	}
	provider, err := h.Service.GetProviderByPhone(r.Context(), phone)
	if err != nil {
		handleServiceError(w, err, "GetProviderByPhone")
		return
	}
	json.NewEncoder(w).Encode(provider)
}

func (h *ProviderHandler) GetProviderByID(w http.ResponseWriter, r *http.Request) {
	provider, err := h.Service.GetProviderByID(r.Context(), getParam(r, "id"))
	if err != nil {
		handleServiceError(w, err, "GetProviderByID")
		return
	}
	json.NewEncoder(w).Encode(provider)
}

func (h *ProviderHandler) DeactivateProvider(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeactivateProvider(r.Context(), getParam(r, "id")); err != nil {
		handleServiceError(w, err, "DeactivateProvider")
		return
	}
	w.WriteHeader(http.StatusOK)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"sevaBack/internal/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Service.GetAllCategories())
}

package services

import (
	"sevaBack/internal/models"
)

// CategoryService exposes the static service-category catalog.
type CategoryService struct{}

func (s *CategoryService) GetAllCategories() []models.Category {
	return models.ServiceCategories
}

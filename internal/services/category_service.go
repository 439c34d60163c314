package services

import (
	"strings"

	apperrors "habitstore/internal/errors"
	"habitstore/internal/liveset"
	"habitstore/internal/models"
	"habitstore/internal/query"
	"habitstore/internal/store"
)

// categoryService handles category mutations.
type categoryService struct {
	store store.Store
	hub   *liveset.Hub
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(s store.Store, hub *liveset.Hub) CategoryServicer {
	return &categoryService{store: s, hub: hub}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "category title is required")
	}
	// The pinned section label is reserved; a category with the same
	// title would collide with it in the sectioned query output.
	if title == query.PinnedSectionTitle {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "category title is reserved")
	}
	if len([]rune(title)) > models.MaxTitleLength {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "category title is too long")
	}
	return title, nil
}

// AddCategory creates a new category with a unique title.
func (s *categoryService) AddCategory(title string) (*models.Category, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	category := &models.Category{Title: title}
	if err := s.store.CreateCategory(category); err != nil {
		return nil, err
	}

	s.hub.NotifyMutation()
	return category, nil
}

// RenameCategory changes a category's title. Trackers in the category
// surface under the new section label on the next recompute.
func (s *categoryService) RenameCategory(categoryID, title string) (*models.Category, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	if err := s.store.RenameCategory(categoryID, title); err != nil {
		return nil, err
	}

	s.hub.NotifyMutation()
	return s.store.GetCategory(categoryID)
}

// DeleteCategory removes the category and, transitively, its trackers
// with their schedule entries and completion records.
func (s *categoryService) DeleteCategory(categoryID string) error {
	if err := s.store.DeleteCategory(categoryID); err != nil {
		return err
	}

	s.hub.NotifyMutation()
	return nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(categoryID string) (*models.Category, error) {
	return s.store.GetCategory(categoryID)
}

// ListCategories retrieves all categories in title order.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	return s.store.ListCategories()
}

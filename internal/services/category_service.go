package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "privfinos/internal/errors"
	"privfinos/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// GetAll retrieves categories matching the given filters, ordered by sort
// order and then newest first.
func (s *categoryService) GetAll(filter CategoryFilter) ([]models.Category, error) {
	q := s.db.Model(&models.Category{})

	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.RootsOnly {
		q = q.Where("parent_id IS NULL")
	} else if filter.ParentID != nil {
		q = q.Where("parent_id = ?", *filter.ParentID)
	}

	var categories []models.Category
	if err := q.Order("sort_order ASC, created_at DESC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetByID retrieves a category by ID.
func (s *categoryService) GetByID(id string) (*models.Category, error) {
	return findCategory(s.db, id)
}

// Create creates a new category. A provided parent must already exist;
// nothing is persisted otherwise.
func (s *categoryService) Create(input CategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:     input.Name,
		Type:     input.Type,
		Color:    input.Color,
		Icon:     input.Icon,
		ParentID: input.ParentID,
		IsActive: true,
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.ParentID != nil {
			if _, err := findCategory(tx, *input.ParentID); err != nil {
				return parentNotFound(err)
			}
		}
		if err := tx.Create(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// Update applies a partial update to an existing category. The parent check
// is shallow: a category may not be its own direct parent, but longer cycles
// through the parent chain are not walked.
func (s *categoryService) Update(id string, input CategoryUpdate) (*models.Category, error) {
	var category *models.Category

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		category, err = findCategory(tx, id)
		if err != nil {
			return err
		}

		if parentID := input.ParentID.Ptr(); parentID != nil {
			if *parentID == id {
				return apperrors.ErrInvalidParent
			}
			if _, err := findCategory(tx, *parentID); err != nil {
				return parentNotFound(err)
			}
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Type != nil {
			updates["type"] = *input.Type
		}
		if input.Color.Present() {
			updates["color"] = input.Color.Ptr()
		}
		if input.Icon.Present() {
			updates["icon"] = input.Icon.Ptr()
		}
		if input.ParentID.Present() {
			updates["parent_id"] = input.ParentID.Ptr()
		}
		if input.SortOrder != nil {
			updates["sort_order"] = *input.SortOrder
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}

		if len(updates) == 0 {
			// A body with no recognized fields still moves the timestamp.
			updates["updated_at"] = time.Now()
		}
		if err := tx.Model(category).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Reload to get fresh data
		if err := tx.First(category, "id = ?", id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// Delete soft-deletes a category by marking it inactive. The row stays
// retrievable and keeps its place in the tree.
func (s *categoryService) Delete(id string) (*models.Category, error) {
	var category *models.Category

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		category, err = findCategory(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(category).Update("is_active", false).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// HardDelete permanently removes a category. Transactions that referenced it
// get their category reference cleared by the database.
func (s *categoryService) HardDelete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		category, err := findCategory(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// findCategory fetches a category by ID within the given handle, mapping a
// missing row to the typed not-found error.
func findCategory(tx *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	if err := tx.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// parentNotFound rewords a category lookup failure for parent validation.
func parentNotFound(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code == apperrors.ErrCategoryNotFound.Code {
		return apperrors.WithMessage(apperrors.ErrCategoryNotFound, "Parent category not found")
	}
	return err
}

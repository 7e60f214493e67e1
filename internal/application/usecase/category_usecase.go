package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

// CategoryUseCase CRUD for categories, scoped to the caller's association.
// Update and Delete verify that the target row belongs to the resolved
// association before mutating.
type CategoryUseCase struct {
	associationRepo repository.AssociationRepository
	repo            repository.CategoryRepository
}

// NewCategoryUseCase builds the usecase.
func NewCategoryUseCase(associationRepo repository.AssociationRepository, repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{associationRepo: associationRepo, repo: repo}
}

// Create inserts a category scoped to the caller's association.
func (uc *CategoryUseCase) Create(email string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	association, err := resolveAssociation(uc.associationRepo, email)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrMissingInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:            uuid.New().String(),
		AssociationID: association.ID,
		Name:          in.Name,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update rewrites name and description after an ownership check.
func (uc *CategoryUseCase) Update(email, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	association, err := resolveAssociation(uc.associationRepo, email)
	if err != nil {
		return nil, err
	}
	if id == "" || in.Name == "" {
		return nil, domain.ErrMissingInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.AssociationID != association.ID {
		return nil, domain.ErrForbidden
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete removes a category after an ownership check. Destructive and
// irreversible: the schema cascades the delete to the category's products.
func (uc *CategoryUseCase) Delete(email, id string) error {
	association, err := resolveAssociation(uc.associationRepo, email)
	if err != nil {
		return err
	}
	if id == "" {
		return domain.ErrMissingInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if category.AssociationID != association.ID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// List returns all categories of the caller's association.
func (uc *CategoryUseCase) List(email string) (*dto.CategoryListResponse, error) {
	association, err := resolveAssociation(uc.associationRepo, email)
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.ListByAssociation(association.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.CategoryListResponse{Items: make([]dto.CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		out.Items = append(out.Items, *toCategoryResponse(c))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

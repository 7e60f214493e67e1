package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

// ProductUseCase CRUD for products. Quantity is only seeded at creation;
// afterwards it moves exclusively through the stock usecase so every change
// has a matching ledger entry.
type ProductUseCase struct {
	associationRepo repository.AssociationRepository
	categoryRepo    repository.CategoryRepository
	repo            repository.ProductRepository
}

// NewProductUseCase builds the usecase.
func NewProductUseCase(
	associationRepo repository.AssociationRepository,
	categoryRepo repository.CategoryRepository,
	repo repository.ProductRepository,
) *ProductUseCase {
	return &ProductUseCase{associationRepo: associationRepo, categoryRepo: categoryRepo, repo: repo}
}

// Create inserts a product under one of the association's categories.
// Quantity below zero is treated as absent and defaults to 0.
func (uc *ProductUseCase) Create(email string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	association, err := resolveAssociation(uc.associationRepo, email)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrMissingInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.AssociationID != association.ID {
		return nil, domain.ErrForbidden
	}
	quantity := in.Quantity
	if quantity < 0 {
		quantity = 0
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		AssociationID: association.ID,
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Quantity:      quantity,
		Unit:          in.Unit,
		ImageURL:      in.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	product.CategoryName = category.Name
	return toProductResponse(product), nil
}

// GetByID fetches one product. Returns (nil, nil) when it does not exist.
func (uc *ProductUseCase) GetByID(email, id string) (*dto.ProductResponse, error) {
	association, err := resolveAssociation(uc.associationRepo, email)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.AssociationID != association.ID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// Update rewrites descriptive fields and price after an ownership check.
// Quantity is untouched: stock changes flow through replenish/deduct.
func (uc *ProductUseCase) Update(email, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	association, err := resolveAssociation(uc.associationRepo, email)
	if err != nil {
		return nil, err
	}
	if id == "" || in.Name == "" {
		return nil, domain.ErrMissingInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.AssociationID != association.ID {
		return nil, domain.ErrForbidden
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Unit = in.Unit
	product.ImageURL = in.ImageURL
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a product after an ownership check. The product's ledger
// entries survive via their write-time snapshot.
func (uc *ProductUseCase) Delete(email, id string) error {
	association, err := resolveAssociation(uc.associationRepo, email)
	if err != nil {
		return err
	}
	if id == "" {
		return domain.ErrMissingInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.AssociationID != association.ID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// List returns all products of the caller's association, each annotated
// with its category name.
func (uc *ProductUseCase) List(email string) (*dto.ProductListResponse, error) {
	association, err := resolveAssociation(uc.associationRepo, email)
	if err != nil {
		return nil, err
	}
	products, err := uc.repo.ListByAssociation(association.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		ImageURL:     p.ImageURL,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

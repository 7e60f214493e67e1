package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

// AssociationUseCase resolves and provisions the tenant. The association's
// email is the sole authorization boundary: every other usecase resolves it
// before touching data.
type AssociationUseCase struct {
	repo repository.AssociationRepository
}

// NewAssociationUseCase builds the usecase.
func NewAssociationUseCase(repo repository.AssociationRepository) *AssociationUseCase {
	return &AssociationUseCase{repo: repo}
}

// EnsureForLogin creates the association on first login when absent, then
// returns it. Idempotent: an existing association is returned untouched.
func (uc *AssociationUseCase) EnsureForLogin(email, name string) (*dto.AssociationResponse, error) {
	if email == "" {
		return nil, domain.ErrMissingInput
	}
	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if name == "" {
			return nil, domain.ErrMissingInput
		}
		existing = &entity.Association{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     email,
			CreatedAt: time.Now(),
		}
		if err := uc.repo.Create(existing); err != nil {
			// Two first logins can race; the loser re-reads the winner's row.
			if err == domain.ErrDuplicate {
				existing, err = uc.repo.GetByEmail(email)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
	}
	return toAssociationResponse(existing), nil
}

// GetByEmail resolves the tenant for the authenticated email.
func (uc *AssociationUseCase) GetByEmail(email string) (*dto.AssociationResponse, error) {
	if email == "" {
		return nil, domain.ErrMissingInput
	}
	association, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if association == nil {
		return nil, domain.ErrAssociationNotFound
	}
	return toAssociationResponse(association), nil
}

func toAssociationResponse(a *entity.Association) *dto.AssociationResponse {
	return &dto.AssociationResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// resolveAssociation is the shared guard used by the CRUD usecases: missing
// email or unknown tenant aborts the operation before any data access.
func resolveAssociation(repo repository.AssociationRepository, email string) (*entity.Association, error) {
	if email == "" {
		return nil, domain.ErrMissingInput
	}
	association, err := repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if association == nil {
		return nil, domain.ErrAssociationNotFound
	}
	return association, nil
}

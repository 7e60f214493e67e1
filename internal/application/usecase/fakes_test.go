package usecase_test

import (
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

// In-memory fakes shared by the usecase tests.

const (
	ownerEmail = "owner@acme.com"
	ownerID    = "assoc-1"
	otherEmail = "other@rival.com"
	otherID    = "assoc-2"
)

type memAssociationRepo struct {
	byEmail map[string]*entity.Association
}

func newMemAssociationRepo() *memAssociationRepo {
	return &memAssociationRepo{byEmail: map[string]*entity.Association{
		ownerEmail: {ID: ownerID, Name: "Acme", Email: ownerEmail},
		otherEmail: {ID: otherID, Name: "Rival", Email: otherEmail},
	}}
}

func (r *memAssociationRepo) Create(a *entity.Association) error {
	if _, ok := r.byEmail[a.Email]; ok {
		return domain.ErrDuplicate
	}
	r.byEmail[a.Email] = a
	return nil
}

func (r *memAssociationRepo) GetByEmail(email string) (*entity.Association, error) {
	return r.byEmail[email], nil
}

func (r *memAssociationRepo) GetByID(id string) (*entity.Association, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemCategoryRepo(categories ...*entity.Category) *memCategoryRepo {
	r := &memCategoryRepo{categories: map[string]*entity.Category{}}
	for _, c := range categories {
		cp := *c
		r.categories[c.ID] = &cp
	}
	return r
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) ListByAssociation(associationID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.AssociationID == associationID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

func (r *memCategoryRepo) TopByProductCount(associationID string, limit int) ([]repository.CategoryDistribution, error) {
	counts := map[string]int{}
	names := map[string]string{}
	for _, c := range r.categories {
		if c.AssociationID == associationID {
			counts[c.ID] = 0
			names[c.ID] = c.Name
		}
	}
	out := make([]repository.CategoryDistribution, 0, len(counts))
	for id := range counts {
		out = append(out, repository.CategoryDistribution{Name: names[id], ProductCount: counts[id]})
	}
	return out, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateQuantity(id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *memProductRepo) ListByAssociation(associationID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.AssociationID == associationID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

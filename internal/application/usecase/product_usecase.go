package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/domain"
	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD de catálogo. La cantidad se mueve solo por
// el motor de stock; aquí únicamente se editan los campos de catálogo.
type ProductUseCase struct {
	repo     repository.ProductRepository
	defaults dto.PageDefaults
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, defaults dto.PageDefaults) *ProductUseCase {
	return &ProductUseCase{repo: repo, defaults: defaults}
}

// Create crea un producto nuevo. El id y los timestamps los asigna el servidor;
// la cantidad inicial es la que venga en el body (0 si se omite).
func (uc *ProductUseCase) Create(in dto.ProductDTO) (*dto.ProductDTO, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name: must not be blank")
	}
	if in.CurrentQuantity < 0 {
		return nil, domain.NewValidationError("currentQuantity: must not be negative")
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		CurrentQuantity: in.CurrentQuantity,
		CreatedAt:       now,
		ModifiedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return dto.NewProductDTO(product), nil
}

// Get obtiene un producto por id.
func (uc *ProductUseCase) Get(id string) (*dto.ProductDTO, error) {
	if id == "" {
		return nil, domain.NewValidationError("id: must not be blank")
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return dto.NewProductDTO(product), nil
}

// List devuelve una página de productos ordenada ascendente por sortBy
// (por defecto name).
func (uc *ProductUseCase) List(q dto.PageQuery) (*dto.PaginationResponse, error) {
	q = q.Normalize(uc.defaults, dto.SortProductDefault)
	products, total, err := uc.repo.Page(q.SortBy, q.Offset(), q.PageSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		items = append(items, *dto.NewProductDTO(p))
	}
	resp := dto.NewPaginationResponse(items, q, total)
	return &resp, nil
}

// Update sobreescribe los campos de catálogo provistos y refresca modifiedAt.
// No toca CurrentQuantity.
func (uc *ProductUseCase) Update(in dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	if in.ProductID == "" {
		return nil, domain.ErrProductIDMissing
	}
	product, err := uc.repo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	product.ModifiedAt = time.Now()
	if err := uc.repo.Save(product); err != nil {
		return nil, err
	}
	return dto.NewProductDTO(product), nil
}

// Delete elimina un producto. Idempotente: un id inexistente no es error.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

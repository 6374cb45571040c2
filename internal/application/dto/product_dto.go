package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ramdev/inventory-api/internal/domain/entity"
)

// Campo de orden por defecto para listados de productos.
const SortProductDefault = "name"

// ProductDTO representación pública de Product. Se usa también como body de
// POST /product (id y timestamps los asigna el servidor).
type ProductDTO struct {
	ProductID       string          `json:"productId"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CurrentQuantity int             `json:"currentQuantity"`
	CreatedAt       time.Time       `json:"createdAt"`
	ModifiedAt      time.Time       `json:"modifiedAt"`
}

// UpdateProductRequest body de POST /product/update. Solo campos de catálogo:
// la cantidad se mueve únicamente por el motor de stock.
type UpdateProductRequest struct {
	ProductID   string           `json:"productId"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// NewProductDTO mapea la entidad a su DTO.
func NewProductDTO(p *entity.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ProductID:       p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		CurrentQuantity: p.CurrentQuantity,
		CreatedAt:       p.CreatedAt,
		ModifiedAt:      p.ModifiedAt,
	}
}

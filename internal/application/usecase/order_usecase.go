package usecase

import (
	"time"

	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/domain"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

// OrderUseCase lado de lectura y vías administrativas de órdenes. La creación
// (que descuenta stock) vive en el motor de stock.
type OrderUseCase struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	defaults    dto.PageDefaults
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	productRepo repository.ProductRepository,
	defaults dto.PageDefaults,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, productRepo: productRepo, defaults: defaults}
}

// Get obtiene una orden por id con su producto embebido.
func (uc *OrderUseCase) Get(id string) (*dto.OrderDTO, error) {
	if id == "" {
		return nil, domain.NewValidationError("id: must not be blank")
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	product, err := uc.productRepo.GetByID(order.ProductID)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderDTO(order, product), nil
}

// List devuelve una página ordenada ascendente por sortBy (por defecto orderId).
func (uc *OrderUseCase) List(q dto.PageQuery) (*dto.PaginationResponse, error) {
	q = q.Normalize(uc.defaults, dto.SortOrderDefault)
	rows, total, err := uc.repo.Page(q.SortBy, q.Offset(), q.PageSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *dto.NewOrderDTO(&rows[i].Order, &rows[i].Product))
	}
	resp := dto.NewPaginationResponse(items, q, total)
	return &resp, nil
}

// Update es la vía de corrección administrativa: sobreescritura directa de los
// campos provistos, sin tocar el stock ni recalcular el precio.
func (uc *OrderUseCase) Update(in dto.UpdateOrderRequest) (*dto.OrderDTO, error) {
	if in.OrderID == "" {
		return nil, domain.ErrOrderIDMissing
	}
	order, err := uc.repo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if in.ProductID != nil {
		order.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		order.Quantity = *in.Quantity
	}
	if in.Price != nil {
		order.Price = *in.Price
	}
	order.ModifiedAt = time.Now()
	if err := uc.repo.Save(order); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(order.ProductID)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderDTO(order, product), nil
}

// Delete borra la orden sin devolver el stock descontado (tombstone).
// Idempotente: borrar un id inexistente no es error.
func (uc *OrderUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

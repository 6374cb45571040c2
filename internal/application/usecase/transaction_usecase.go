package usecase

import (
	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/domain"
	"github.com/ramdev/inventory-api/internal/domain/repository"
)

// TransactionUseCase lado de lectura y vías administrativas del libro de
// transacciones. La creación vive en el motor de stock (stock.Engine).
type TransactionUseCase struct {
	repo        repository.InventoryTransactionRepository
	productRepo repository.ProductRepository
	defaults    dto.PageDefaults
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	repo repository.InventoryTransactionRepository,
	productRepo repository.ProductRepository,
	defaults dto.PageDefaults,
) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, productRepo: productRepo, defaults: defaults}
}

// Get obtiene una transacción por id con su producto embebido.
func (uc *TransactionUseCase) Get(id string) (*dto.TransactionDTO, error) {
	if id == "" {
		return nil, domain.NewValidationError("id: must not be blank")
	}
	trx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trx == nil {
		return nil, domain.ErrTransactionNotFound
	}
	product, err := uc.productRepo.GetByID(trx.ProductID)
	if err != nil {
		return nil, err
	}
	return dto.NewTransactionDTO(trx, product), nil
}

// List devuelve una página ordenada ascendente por sortBy (por defecto
// transactionId), con totalElements sobre el conjunto completo.
func (uc *TransactionUseCase) List(q dto.PageQuery) (*dto.PaginationResponse, error) {
	q = q.Normalize(uc.defaults, dto.SortTransactionDefault)
	rows, total, err := uc.repo.Page(q.SortBy, q.Offset(), q.PageSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *dto.NewTransactionDTO(&rows[i].Transaction, &rows[i].Product))
	}
	resp := dto.NewPaginationResponse(items, q, total)
	return &resp, nil
}

// Update es la vía de corrección administrativa: sobreescribe los campos
// provistos tal cual y guarda. NO revalida stock ni ajusta la cantidad del
// producto; quien cambie quantity por aquí deja el libro y el producto bajo
// su propia responsabilidad.
func (uc *TransactionUseCase) Update(in dto.UpdateTransactionRequest) (*dto.TransactionDTO, error) {
	if in.TransactionID == "" {
		return nil, domain.ErrTransactionIDMissing
	}
	trx, err := uc.repo.GetByID(in.TransactionID)
	if err != nil {
		return nil, err
	}
	if trx == nil {
		return nil, domain.ErrTransactionNotFound
	}
	if in.ProductID != nil {
		trx.ProductID = *in.ProductID
	}
	if in.Type != nil {
		trx.Type = *in.Type
	}
	if in.Quantity != nil {
		trx.Quantity = *in.Quantity
	}
	if err := uc.repo.Save(trx); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(trx.ProductID)
	if err != nil {
		return nil, err
	}
	return dto.NewTransactionDTO(trx, product), nil
}

// Delete borra el registro sin revertir su efecto sobre el stock: es un
// tombstone, no una operación inversa. Un id inexistente es un error genérico.
func (uc *TransactionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

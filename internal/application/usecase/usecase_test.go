package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/application/usecase"
	"github.com/ramdev/inventory-api/internal/domain"
	"github.com/ramdev/inventory-api/internal/domain/entity"
	"github.com/ramdev/inventory-api/internal/infrastructure/memory"
)

var testDefaults = dto.PageDefaults{PageNumber: 0, PageSize: 10}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func seedProduct(t *testing.T, store *memory.Store, name string, quantity int) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:              uuid.New().String(),
		Name:            name,
		Price:           decimal.RequireFromString("9.99"),
		CurrentQuantity: quantity,
		CreatedAt:       now,
		ModifiedAt:      now,
	}
	require.NoError(t, store.Products().Create(p))
	return p
}

func seedTransaction(t *testing.T, store *memory.Store, productID string, trxType string, quantity int) *entity.InventoryTransaction {
	t.Helper()
	trx := &entity.InventoryTransaction{
		ID:        uuid.New().String(),
		ProductID: productID,
		Type:      trxType,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Transactions().Create(trx))
	return trx
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Lectura idempotente: el DTO leído tras crear coincide con lo enviado más
// id y timestamps asignados por el servidor.
func TestProductUseCase_CreateLuegoGet(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products(), testDefaults)

	created, err := uc.Create(dto.ProductDTO{
		Name:            "Laptop",
		Description:     "14 pulgadas",
		Price:           decimal.RequireFromString("999.90"),
		CurrentQuantity: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ProductID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.ModifiedAt.IsZero())

	got, err := uc.Get(created.ProductID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, "14 pulgadas", got.Description)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("999.90")))
	assert.Equal(t, 5, got.CurrentQuantity)
	assert.Equal(t, created.ProductID, got.ProductID)
}

func TestProductUseCase_GetInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products(), testDefaults)

	_, err := uc.Get(uuid.New().String())
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUseCase_List_OrdenAscendenteYTotales(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products(), testDefaults)

	for _, name := range []string{"Zeta", "Alfa", "Mu", "Beta", "Kappa"} {
		seedProduct(t, store, name, 1)
	}

	out, err := uc.List(dto.PageQuery{PageNumber: 0, PageSize: 2, SortBy: "name"})
	require.NoError(t, err)

	items := out.Data.([]dto.ProductDTO)
	require.Len(t, items, 2)
	assert.Equal(t, "Alfa", items[0].Name)
	assert.Equal(t, "Beta", items[1].Name)

	// totalElements siempre es el conjunto completo, sin importar el tamaño de página.
	assert.EqualValues(t, 5, out.Pagination.TotalElements)
	assert.Equal(t, 3, out.Pagination.TotalPages)
	assert.Equal(t, 0, out.Pagination.PageNumber)
	assert.Equal(t, 2, out.Pagination.PageSize)

	// Página fuera de rango: vacía pero con los totales intactos.
	out, err = uc.List(dto.PageQuery{PageNumber: 9, PageSize: 2, SortBy: "name"})
	require.NoError(t, err)
	assert.Empty(t, out.Data)
	assert.EqualValues(t, 5, out.Pagination.TotalElements)
}

func TestProductUseCase_List_DefaultsDeConfiguracion(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products(), testDefaults)

	for i := 0; i < 12; i++ {
		seedProduct(t, store, string(rune('a'+i)), 1)
	}

	// Sin pageSize ni sortBy: tamaño 10, orden por name.
	out, err := uc.List(dto.PageQuery{})
	require.NoError(t, err)
	items := out.Data.([]dto.ProductDTO)
	assert.Len(t, items, 10)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, 10, out.Pagination.PageSize)
	assert.EqualValues(t, 12, out.Pagination.TotalElements)
	assert.Equal(t, 2, out.Pagination.TotalPages)
}

func TestProductUseCase_List_CampoDeOrdenDesconocido(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products(), testDefaults)

	_, err := uc.List(dto.PageQuery{SortBy: "no-such-field"})
	require.Error(t, err)
	assert.False(t, domain.IsNotFound(err), "es un error sin clasificar, no un 404")
}

func TestProductUseCase_Update_SoloCamposDeCatalogo(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products(), testDefaults)
	p := seedProduct(t, store, "Viejo", 7)

	newName := "Nuevo"
	newPrice := decimal.RequireFromString("55.00")
	out, err := uc.Update(dto.UpdateProductRequest{
		ProductID: p.ID,
		Name:      &newName,
		Price:     &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", out.Name)
	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, 7, out.CurrentQuantity, "el stock no se edita por el CRUD de catálogo")

	_, err = uc.Update(dto.UpdateProductRequest{})
	require.ErrorIs(t, err, domain.ErrProductIDMissing)

	_, err = uc.Update(dto.UpdateProductRequest{ProductID: uuid.New().String()})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUseCase_Delete_Idempotente(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products(), testDefaults)
	p := seedProduct(t, store, "Efímero", 1)

	require.NoError(t, uc.Delete(p.ID))
	require.NoError(t, uc.Delete(p.ID), "borrar dos veces no es error")
}

// ──────────────────────────────────────────────────────────────────────────────
// TransactionUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionUseCase_GetConProductoEmbebido(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewTransactionUseCase(store.Transactions(), store.Products(), testDefaults)
	p := seedProduct(t, store, "Hub", 6)
	trx := seedTransaction(t, store, p.ID, entity.TransactionTypeTopUp, 6)

	out, err := uc.Get(trx.ID)
	require.NoError(t, err)
	assert.Equal(t, trx.ID, out.TransactionID)
	require.NotNil(t, out.Product)
	assert.Equal(t, p.ID, out.Product.ProductID)

	_, err = uc.Get(uuid.New().String())
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

// La vía de corrección sobreescribe el registro pero jamás toca el producto:
// quien cambie quantity por aquí rompe la reconstrucción bajo su propio riesgo.
func TestTransactionUseCase_Update_NoAjustaElStock(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewTransactionUseCase(store.Transactions(), store.Products(), testDefaults)
	p := seedProduct(t, store, "Teclado", 10)
	trx := seedTransaction(t, store, p.ID, entity.TransactionTypeWithdraw, 2)

	newQty := 9999
	out, err := uc.Update(dto.UpdateTransactionRequest{
		TransactionID: trx.ID,
		Quantity:      &newQty,
	})
	require.NoError(t, err)
	assert.Equal(t, 9999, out.Quantity)

	stored, err := store.Products().GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.CurrentQuantity, "la corrección no revalida ni ajusta stock")

	_, err = uc.Update(dto.UpdateTransactionRequest{})
	require.ErrorIs(t, err, domain.ErrTransactionIDMissing)

	_, err = uc.Update(dto.UpdateTransactionRequest{TransactionID: uuid.New().String()})
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestTransactionUseCase_Delete(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewTransactionUseCase(store.Transactions(), store.Products(), testDefaults)
	p := seedProduct(t, store, "Parlante", 4)
	trx := seedTransaction(t, store, p.ID, entity.TransactionTypeTopUp, 4)

	require.NoError(t, uc.Delete(trx.ID))

	// Borrar no revierte el stock: el registro es un tombstone.
	stored, err := store.Products().GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.CurrentQuantity)

	// A diferencia de órdenes, el id inexistente sí es un error.
	require.Error(t, uc.Delete(trx.ID))
}

func TestTransactionUseCase_List_PaginadoPorDefecto(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewTransactionUseCase(store.Transactions(), store.Products(), testDefaults)
	p := seedProduct(t, store, "Micrófono", 50)
	for i := 1; i <= 15; i++ {
		seedTransaction(t, store, p.ID, entity.TransactionTypeTopUp, i)
	}

	out, err := uc.List(dto.PageQuery{})
	require.NoError(t, err)
	items := out.Data.([]dto.TransactionDTO)
	assert.Len(t, items, 10)
	assert.EqualValues(t, 15, out.Pagination.TotalElements)
	assert.Equal(t, 2, out.Pagination.TotalPages)

	// Orden ascendente por el campo por defecto (transactionId).
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].TransactionID, items[i].TransactionID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// OrderUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUseCase_UpdateYDeleteIdempotente(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewOrderUseCase(store.Orders(), store.Products(), testDefaults)
	p := seedProduct(t, store, "Router", 9)

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		ProductID:  p.ID,
		Quantity:   3,
		Price:      decimal.RequireFromString("40.00"),
		CreatedAt:  now,
		ModifiedAt: now,
	}
	require.NoError(t, store.Orders().Create(order))

	newQty := 5
	out, err := uc.Update(dto.UpdateOrderRequest{OrderID: order.ID, Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Quantity)
	assert.True(t, out.ModifiedAt.After(now) || out.ModifiedAt.Equal(now))

	stored, err := store.Products().GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, stored.CurrentQuantity, "la corrección de la orden no toca el stock")

	_, err = uc.Update(dto.UpdateOrderRequest{})
	require.ErrorIs(t, err, domain.ErrOrderIDMissing)

	require.NoError(t, uc.Delete(order.ID))
	require.NoError(t, uc.Delete(order.ID), "el delete de órdenes es idempotente")

	_, err = uc.Get(order.ID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

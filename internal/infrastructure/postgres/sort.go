package postgres

import "fmt"

// Columnas permitidas para ORDER BY, por entidad. La clave es el nombre de
// campo DTO que llega en sortBy; interpolar la columna directamente en el SQL
// solo es seguro porque pasa por esta lista blanca.
var (
	productSortColumns = map[string]string{
		"productId":       "id",
		"name":            "name",
		"description":     "description",
		"price":           "price",
		"currentQuantity": "current_quantity",
		"createdAt":       "created_at",
		"modifiedAt":      "modified_at",
	}
	transactionSortColumns = map[string]string{
		"transactionId": "id",
		"productId":     "product_id",
		"type":          "type",
		"quantity":      "quantity",
		"createdAt":     "created_at",
	}
	orderSortColumns = map[string]string{
		"orderId":    "id",
		"productId":  "product_id",
		"quantity":   "quantity",
		"price":      "price",
		"createdAt":  "created_at",
		"modifiedAt": "modified_at",
	}
)

// sortColumn resuelve el campo pedido contra la lista blanca. Un campo
// desconocido es un error sin clasificar (el boundary lo reporta como 500,
// igual que hacía el diseño original).
func sortColumn(allowed map[string]string, sortBy string) (string, error) {
	col, ok := allowed[sortBy]
	if !ok {
		return "", fmt.Errorf("unknown sort field %q", sortBy)
	}
	return col, nil
}

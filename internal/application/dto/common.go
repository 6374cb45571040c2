package dto

// ApiResponse es el envoltorio genérico de todas las respuestas (éxito y error).
type ApiResponse struct {
	Status  int    `json:"status"`  // código HTTP (200, 404, ...)
	Message string `json:"message"` // mensaje descriptivo
	Data    any    `json:"data"`    // payload, o nil en errores
}

// PaginationInfo metadatos de página en respuestas de listado.
type PaginationInfo struct {
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// PaginationResponse página de datos más sus metadatos.
type PaginationResponse struct {
	Data       any            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewPaginationResponse arma la página con totalPages redondeado hacia arriba.
func NewPaginationResponse(data any, q PageQuery, total int64) PaginationResponse {
	totalPages := 0
	if q.PageSize > 0 {
		totalPages = int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	}
	return PaginationResponse{
		Data: data,
		Pagination: PaginationInfo{
			PageNumber:    q.PageNumber,
			PageSize:      q.PageSize,
			TotalPages:    totalPages,
			TotalElements: total,
		},
	}
}

// PageQuery parámetros de paginación que llegan del caller.
type PageQuery struct {
	PageNumber int
	PageSize   int
	SortBy     string
}

// PageDefaults defaults de paginación. Se cargan desde pkg/config: es el único
// punto a tocar si algún día se quiere poner un tope al tamaño de página.
type PageDefaults struct {
	PageNumber  int
	PageSize    int
	MaxPageSize int // 0 = sin tope
}

// Normalize aplica defaults a los campos ausentes y el tope si está configurado.
func (q PageQuery) Normalize(d PageDefaults, defaultSort string) PageQuery {
	if q.PageNumber < 0 {
		q.PageNumber = d.PageNumber
	}
	if q.PageSize <= 0 {
		q.PageSize = d.PageSize
	}
	if d.MaxPageSize > 0 && q.PageSize > d.MaxPageSize {
		q.PageSize = d.MaxPageSize
	}
	if q.SortBy == "" {
		q.SortBy = defaultSort
	}
	return q
}

// Offset traduce pageNumber/pageSize a offset de la consulta.
func (q PageQuery) Offset() int {
	return q.PageNumber * q.PageSize
}

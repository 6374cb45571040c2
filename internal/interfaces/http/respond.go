package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ramdev/inventory-api/internal/application/dto"
	"github.com/ramdev/inventory-api/internal/domain"
)

// respond escribe el envoltorio {status, message, data}. El status HTTP y el
// del envoltorio siempre coinciden.
func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.ApiResponse{Status: status, Message: message, Data: data})
}

// respondError traduce errores de dominio a su status. La traducción vive solo
// aquí: los casos de uso propagan los errores sin tocarlos.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return respond(c, fiber.StatusBadRequest, "Validation failed", vErr.Fields)
	case domain.IsNotFound(err):
		return respond(c, fiber.StatusNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusConflict, err.Error(), nil)
	default:
		// Error sin clasificar: queda en el log con la ruta que lo produjo.
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error sin clasificar")
		return respond(c, fiber.StatusInternalServerError, "Internal server error: "+err.Error(), nil)
	}
}

// respondBadBody respuesta estándar para un body que no parsea.
func respondBadBody(c *fiber.Ctx) error {
	return respond(c, fiber.StatusBadRequest, "Validation failed", []string{"body: malformed JSON"})
}

// deleteRequest body de los POST .../delete.
type deleteRequest struct {
	ID string `json:"id"`
}

// pageQuery lee pageNumber/pageSize/sortBy de la query string. Los defaults
// finos (tamaño 10, orden por entidad) los aplica el caso de uso.
func pageQuery(c *fiber.Ctx) dto.PageQuery {
	return dto.PageQuery{
		PageNumber: c.QueryInt("pageNumber", 0),
		PageSize:   c.QueryInt("pageSize", 0),
		SortBy:     c.Query("sortBy"),
	}
}

// Package http contiene los handlers Fiber de la API y el router.
package http

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain"
)

// respondError mapea los errores centinela del dominio a códigos HTTP. Todos
// los handlers comparten la misma taxonomía de errores (ver internal/domain),
// así que el mapeo vive en un solo lugar.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrGarantiaSinDefinir):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WARRANTY_REQUIRED", Message: "la decisión de garantía y su motivo son obligatorios"})
	case errors.Is(err, domain.ErrFormatoArchivo):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "FILE_FORMAT", Message: "formato de archivo no reconocido"})
	case errors.Is(err, domain.ErrSinTecnicos):
		return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{Code: "NO_ROSTER", Message: "importe primero el plantel de técnicos"})
	case errors.Is(err, domain.ErrTransferInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSFER", Message: "transferencia inválida: origen y destino efectivo coinciden o no hay items que mover"})
	case errors.Is(err, domain.ErrRespaldoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BACKUP", Message: "el respaldo no tiene la forma esperada"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el registro ya existe"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// readUploadedFiles lee los archivos de un campo multipart en memoria. Los
// archivos de origen son hojas de cálculo de unas decenas de KB; leerlos
// completos es el modelo de la aplicación (el extractor trabaja sobre la
// tabla entera, no en streaming).
func readUploadedFiles(c *fiber.Ctx, field string) ([]dto.UploadedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, domain.ErrInvalidInput
	}
	files := make([]dto.UploadedFile, 0, len(headers))
	for _, header := range headers {
		data, err := readMultipartFile(header)
		if err != nil {
			return nil, err
		}
		files = append(files, dto.UploadedFile{Name: header.Filename, Data: data})
	}
	return files, nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

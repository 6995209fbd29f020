package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrFormatoArchivo  = errors.New("formato de archivo no reconocido")
	ErrSinTecnicos     = errors.New("la lista de técnicos no está cargada")
	ErrTransferInvalida = errors.New("el origen y el destino comparten inventario")
	ErrGarantiaSinDefinir = errors.New("la decisión de garantía y su motivo son obligatorios")
	ErrRespaldoInvalido   = errors.New("formato de respaldo inválido")
)

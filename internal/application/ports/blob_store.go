package ports

import (
	"context"
	"errors"
)

// ErrBlobNotFound indica que la clave no tiene blob persistido todavía.
var ErrBlobNotFound = errors.New("blob no encontrado")

// BlobStore define el puerto de persistencia de la aplicación: un almacén
// clave-valor de blobs JSON. Cada colección (stock, técnicos, sucursales,
// historial, catálogo) se guarda completa bajo una clave fija; no hay
// escrituras incrementales.
//
// Cualquier adaptador (archivo local, PostgreSQL, memoria para tests) debe
// implementar esta interfaz; la aplicación solo conoce este contrato.
type BlobStore interface {
	// Load deserializa el blob de la clave en v. Si la clave no existe
	// devuelve ErrBlobNotFound y deja v sin tocar.
	Load(ctx context.Context, key string, v any) error

	// Save serializa v y sobrescribe el blob de la clave.
	Save(ctx context.Context, key string, v any) error

	// Delete elimina el blob de la clave. Borrar una clave inexistente no es error.
	Delete(ctx context.Context, key string) error
}

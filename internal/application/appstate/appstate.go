// Package appstate contiene el estado persistido de la aplicación: las cinco
// colecciones (stock, técnicos, sucursales, historial, catálogo) que la
// versión web guardaba en localStorage. Aquí viven en memoria bajo un único
// coordinador, se cargan al arranque y se persisten completas tras cada
// mutación; no hay singletons mutables.
package appstate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/comexa/stock-control-api/internal/application/ports"
	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// Claves fijas de los blobs persistidos. Se conservan los nombres de la
// versión web para que un respaldo siga siendo legible entre versiones.
const (
	KeyStock    = "comexa_stock"
	KeyTechs    = "comexa_techs"
	KeyBranches = "comexa_branches"
	KeyLogs     = "comexa_logs"
	KeyCatalog  = "comexa_catalog"
)

// Data agrupa las cinco colecciones persistidas.
type Data struct {
	Stock       []entity.StockLine       `json:"stock"`
	Technicians []entity.Technician      `json:"technicians"`
	Branches    []entity.Branch          `json:"branches"`
	Logs        []entity.InstallationLog `json:"logs"`
	Catalog     entity.DeviceCatalog     `json:"deviceCatalog"`
}

// AppState coordina el estado en memoria y su persistencia.
//
// Toda mutación pasa por Update: se trabaja sobre una copia, se persiste el
// estado completo y solo entonces se publica en memoria. Si la persistencia
// falla, el estado en memoria queda exactamente como estaba (parse →
// validate → commit, nunca intercalado).
type AppState struct {
	mu    sync.RWMutex
	store ports.BlobStore
	data  Data
}

// New construye el estado vacío sobre el almacén dado. Llamar Load antes de usar.
func New(store ports.BlobStore) *AppState {
	return &AppState{store: store}
}

// Load carga las cinco colecciones del almacén. Las claves ausentes quedan
// como colecciones vacías; el catálogo ausente usa el catálogo de fábrica.
func (s *AppState) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := Data{Catalog: entity.DefaultDeviceCatalog()}
	for _, item := range []struct {
		key string
		dst any
	}{
		{KeyStock, &d.Stock},
		{KeyTechs, &d.Technicians},
		{KeyBranches, &d.Branches},
		{KeyLogs, &d.Logs},
		{KeyCatalog, &d.Catalog},
	} {
		if err := s.store.Load(ctx, item.key, item.dst); err != nil {
			if errors.Is(err, ports.ErrBlobNotFound) {
				continue
			}
			return fmt.Errorf("cargar %s: %w", item.key, err)
		}
	}
	s.data = d
	return nil
}

// View ejecuta fn bajo lock de lectura con el estado actual. fn no debe
// retener ni mutar las colecciones; para eso está Update.
func (s *AppState) View(fn func(d Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// Update ejecuta fn sobre una copia del estado, persiste el resultado
// completo y lo publica en memoria. Si fn o la persistencia devuelven error,
// no cambia nada.
func (s *AppState) Update(ctx context.Context, fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// Reset borra las cinco claves del almacén y deja el estado de fábrica
// (colecciones vacías, catálogo integrado).
func (s *AppState) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyStock, KeyTechs, KeyBranches, KeyLogs, KeyCatalog} {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("borrar %s: %w", key, err)
		}
	}
	s.data = Data{Catalog: entity.DefaultDeviceCatalog()}
	return nil
}

func (s *AppState) persist(ctx context.Context, d Data) error {
	for _, item := range []struct {
		key string
		v   any
	}{
		{KeyStock, d.Stock},
		{KeyTechs, d.Technicians},
		{KeyBranches, d.Branches},
		{KeyLogs, d.Logs},
		{KeyCatalog, d.Catalog},
	} {
		if err := s.store.Save(ctx, item.key, item.v); err != nil {
			return fmt.Errorf("guardar %s: %w", item.key, err)
		}
	}
	return nil
}

func (d Data) clone() Data {
	out := Data{
		Stock:       append([]entity.StockLine(nil), d.Stock...),
		Technicians: append([]entity.Technician(nil), d.Technicians...),
		Branches:    append([]entity.Branch(nil), d.Branches...),
		Logs:        append([]entity.InstallationLog(nil), d.Logs...),
		Catalog:     make(entity.DeviceCatalog, len(d.Catalog)),
	}
	for client, items := range d.Catalog {
		out.Catalog[client] = append([]entity.CatalogItem(nil), items...)
	}
	return out
}

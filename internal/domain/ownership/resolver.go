// Package ownership resuelve el dueño efectivo de una operación de stock.
// Algunos técnicos junior tienen su inventario consolidado bajo su
// supervisor: toda operación nominal sobre ellos se redirige.
package ownership

// DefaultOverrides es la tabla estática de redirecciones (junior -> supervisor).
// Es configuración, no datos: el usuario no la edita desde la aplicación.
// Invariante de configuración: ningún supervisor aparece como clave, así que
// la resolución no encadena (Resolve es idempotente).
var DefaultOverrides = map[string]string{
	"MAURO ISRAEL GUTIÉRREZ HEREDIA": "JULIO FERNANDO BARROSO CHAN",
	"ANGEL FERNANDO MOO MONTEJO":     "JULIO FERNANDO BARROSO CHAN",
	"ALEX ROBERTO HOIL PUCH":         "JULIO FERNANDO BARROSO CHAN",
}

// Resolver redirige el dueño nominal de una operación a su dueño efectivo.
type Resolver struct {
	overrides map[string]string
}

// NewResolver construye un Resolver con la tabla dada; nil usa DefaultOverrides.
func NewResolver(overrides map[string]string) *Resolver {
	if overrides == nil {
		overrides = DefaultOverrides
	}
	return &Resolver{overrides: overrides}
}

// Resolve devuelve el supervisor configurado para el nombre, o el nombre sin
// cambios si no hay redirección.
func (r *Resolver) Resolve(name string) string {
	if supervisor, ok := r.overrides[name]; ok {
		return supervisor
	}
	return name
}

// Redirected indica si el nombre tiene redirección configurada.
func (r *Resolver) Redirected(name string) bool {
	_, ok := r.overrides[name]
	return ok
}

package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas). Los handlers y callers
// discriminan con errors.Is / errors.As; nada se devuelve como texto plano.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateWorkOrder = errors.New("la orden de trabajo ya fue procesada")
	ErrUnknownMaterial    = errors.New("material no registrado en el catálogo")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrStorage            = errors.New("fallo de almacenamiento")
)

// UnknownMaterialError identifica el nombre ofensivo para que el caller
// pueda corregir desajustes de extracción/nombres.
type UnknownMaterialError struct {
	Name string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("material %q no registrado en el catálogo", e.Name)
}

// Unwrap permite errors.Is(err, ErrUnknownMaterial).
func (e *UnknownMaterialError) Unwrap() error { return ErrUnknownMaterial }

// Shortfall describe un faltante de stock: cuánto hay y cuánto se pidió.
type Shortfall struct {
	MaterialName string
	Available    decimal.Decimal
	Requested    decimal.Decimal
}

// InsufficientStockError agrupa todos los faltantes de un lote, no solo el primero.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("%q (hay %s, se piden %s)",
			s.MaterialName, s.Available.String(), s.Requested.String()))
	}
	return "stock insuficiente: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// WrapStorage marca un error de la capa de persistencia como ErrStorage,
// preservando la causa para el log. Los errores de dominio pasan intactos.
func WrapStorage(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicateWorkOrder) ||
		errors.Is(err, ErrUnknownMaterial) ||
		errors.Is(err, ErrInsufficientStock) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

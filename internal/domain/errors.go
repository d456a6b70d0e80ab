package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// InsufficientStock envuelve ErrInsufficientStock con el nombre del producto
// ofensor, preservando la plantilla de mensaje que recibe el cliente de la API.
func InsufficientStock(productName string) error {
	return fmt.Errorf("%w: el producto %s no tiene existencias suficientes", ErrInsufficientStock, productName)
}

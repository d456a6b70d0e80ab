package entity

import "time"

// User es un vendedor del CRM. Posee cero o más clientes y pedidos.
type User struct {
	ID           string
	Name         string
	LastName     string
	Email        string // único
	PasswordHash string
	CreatedAt    time.Time
}

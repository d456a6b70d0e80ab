package dto

import "time"

// CreateClientRequest entrada para crear un cliente. El vendedor propietario
// se asigna desde la sesión, nunca desde el cuerpo de la petición.
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
	Company  string `json:"company"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
}

// UpdateClientRequest entrada para actualizar un cliente (campos opcionales).
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Company  *string `json:"company"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"last_name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	SellerID  string    `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
}

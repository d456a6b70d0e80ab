package entity

import "time"

// Client es un cliente captado por un vendedor. SellerID es inmutable después
// de la creación y coincide con el vendedor que lo creó; solo ese vendedor
// puede leerlo, actualizarlo o eliminarlo.
type Client struct {
	ID        string
	Name      string
	LastName  string
	Company   string
	Email     string // único
	Phone     string
	SellerID  string
	CreatedAt time.Time
}

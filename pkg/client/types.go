package client

import "time"

// Resource shapes as serialized by the API.

type User struct {
	ID        uint      `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type House struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Cabinet struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	HouseID     uint      `json:"house_id"`
	QRCode      string    `json:"qr_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	CabinetID   uint      `json:"cabinet_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Writable fields per entity.

type HouseParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	UserID      uint    `json:"user_id,omitempty"`
}

type CabinetParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	HouseID     uint    `json:"house_id,omitempty"`
}

type ProductParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	CabinetID   uint    `json:"cabinet_id,omitempty"`
}

// Response envelopes, one fixed schema per endpoint.

type userEnvelope struct {
	User   User `json:"user"`
	Status int  `json:"status"`
}

type usersEnvelope struct {
	Users  []User `json:"users"`
	Status int    `json:"status"`
}

type loginEnvelope struct {
	User   User   `json:"user"`
	Token  string `json:"token"`
	Status int    `json:"status"`
}

type forgotPasswordEnvelope struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token"`
	Status     int    `json:"status"`
}

type houseEnvelope struct {
	House  House `json:"house"`
	Status int   `json:"status"`
}

type housesEnvelope struct {
	Houses []House `json:"houses"`
	Status int     `json:"status"`
}

type cabinetEnvelope struct {
	Cabinet Cabinet `json:"cabinet"`
	Status  int     `json:"status"`
}

type cabinetsEnvelope struct {
	Cabinets []Cabinet `json:"cabinets"`
	Status   int       `json:"status"`
}

type productEnvelope struct {
	Product Product `json:"product"`
	Status  int     `json:"status"`
}

type productsEnvelope struct {
	Products []Product `json:"products"`
	Status   int       `json:"status"`
}

package handler

import "time"

// --- Requests ---

type registerRequest struct {
	Name     string `json:"nome"  validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

type lineItemRequest struct {
	Name      string  `json:"nome"       validate:"required"`
	UnitPrice float64 `json:"preco"      validate:"required,gt=0"`
	Quantity  float64 `json:"quantidade" validate:"required,gt=0"`
}

type recordSaleRequest struct {
	Customer string            `json:"cliente"  validate:"required"`
	Products []lineItemRequest `json:"produtos" validate:"required,min=1,dive"`
}

// --- Responses ---

// messageResponse is the envelope for plain confirmations and every error.
type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type saleCreatedResponse struct {
	Message string  `json:"message"`
	ID      string  `json:"id"`
	Total   float64 `json:"total"`
}

// clerkResponse deliberately has no password field.
type clerkResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

type lineItemResponse struct {
	Name      string  `json:"nome"`
	UnitPrice float64 `json:"preco"`
	Quantity  float64 `json:"quantidade"`
}

type saleResponse struct {
	ID         string             `json:"id"`
	Customer   string             `json:"cliente"`
	Products   []lineItemResponse `json:"produtos"`
	Total      float64            `json:"total"`
	RecordedBy string             `json:"registrado_por"`
	RecordedAt time.Time          `json:"data"`
}

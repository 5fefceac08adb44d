package dto

type BookClassRequest struct {
	ClassID     uint   `json:"class_id" validate:"required"`
	ClientName  string `json:"client_name" validate:"required"`
	ClientEmail string `json:"client_email" validate:"required,email"`
	Timezone    string `json:"timezone"`
}

type ListBookingsQuery struct {
	Email    string `query:"email" validate:"required,email"`
	Timezone string `query:"timezone"`
}

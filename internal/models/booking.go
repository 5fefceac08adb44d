package models

type Booking struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ClassID     uint   `gorm:"not null" json:"class_id"`
	ClientName  string `gorm:"not null" json:"client_name"`
	ClientEmail string `gorm:"not null;index" json:"client_email"`
	BookedAt    string `gorm:"not null" json:"booked_at"`
}

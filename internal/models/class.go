package models

// Class is one scheduled fitness class. DateTime is kept as the stored
// base-zone timestamp string; display-zone formatting happens at the edge.
type Class struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	DateTime       string `gorm:"not null" json:"date_time"`
	Instructor     string `gorm:"not null" json:"instructor"`
	AvailableSlots int    `gorm:"not null" json:"available_slots"`
}

func (Class) TableName() string {
	return "classes"
}

package model

import "github.com/google/uuid"

// Pelaporan is an incident report filed by a user (illegal dumping, full bins, ...).
type Pelaporan struct {
	BaseModel
	Name        string       `gorm:"type:varchar(255)" json:"name"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"userId"`
	Judul       string       `gorm:"type:varchar(255);not null" json:"judul"`
	Address     string       `gorm:"type:text;not null" json:"address"`
	Description string       `gorm:"type:text;not null" json:"description"`
	ImageURL    string       `gorm:"type:text;not null" json:"imageUrl"`
	Status      ReportStatus `gorm:"type:varchar(20);not null;default:'sent'" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

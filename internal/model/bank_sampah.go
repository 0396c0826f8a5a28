package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankSampah is a waste collection point.
type BankSampah struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Location string `gorm:"type:text;not null" json:"location"`

	Sampah []Sampah `gorm:"foreignKey:BankSampahID" json:"sampah,omitempty"`
}

// Sampah is a waste category accepted by a BankSampah at a unit price.
type Sampah struct {
	BaseModel
	Category     string          `gorm:"type:varchar(100);not null" json:"category"`
	Price        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	BankSampahID uuid.UUID       `gorm:"type:uuid;not null;index" json:"bankSampahId"`

	BankSampah *BankSampah `gorm:"foreignKey:BankSampahID" json:"bankSampah,omitempty"`
}

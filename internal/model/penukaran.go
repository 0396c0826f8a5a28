package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Penukaran is a waste deposit that earns the user points once it succeeds.
type Penukaran struct {
	BaseModel
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"userId"`
	SampahID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"sampahId"`
	BankSampahID uuid.UUID         `gorm:"type:uuid;not null;index" json:"bankSampahId"`
	Amount       decimal.Decimal   `gorm:"type:numeric(14,2);not null" json:"amount"`
	Earned       int64             `gorm:"not null;default:0" json:"earned"`
	Status       TransactionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Sampah     *Sampah     `gorm:"foreignKey:SampahID" json:"sampah,omitempty"`
	BankSampah *BankSampah `gorm:"foreignKey:BankSampahID" json:"bankSampah,omitempty"`
}

package model

import "github.com/google/uuid"

// Payment is a purchase of a Barang paid with points.
type Payment struct {
	BaseModel
	UserID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"userId"`
	TokoID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"tokoId"`
	BarangID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"barangId"`
	TotalPrice int64             `gorm:"not null" json:"totalPrice"`
	Status     TransactionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Toko   *Toko   `gorm:"foreignKey:TokoID" json:"toko,omitempty"`
	Barang *Barang `gorm:"foreignKey:BarangID" json:"barang,omitempty"`
}

package model

import "github.com/google/uuid"

// Toko is a shop that sells Barang for points.
type Toko struct {
	BaseModel
	Nama     string `gorm:"type:varchar(255);not null" json:"nama"`
	Alamat   string `gorm:"type:text;not null" json:"alamat"`
	ImageURL string `gorm:"type:text" json:"imageUrl"`

	Barang []Barang `gorm:"foreignKey:TokoID" json:"barang,omitempty"`
}

// Barang is an item on sale; Harga is in points.
type Barang struct {
	BaseModel
	Nama     string    `gorm:"type:varchar(255);not null" json:"nama"`
	Harga    int64     `gorm:"not null;default:0" json:"harga"`
	Stok     int       `gorm:"not null;default:0" json:"stok"`
	ImageURL string    `gorm:"type:text" json:"imageUrl"`
	TokoID   uuid.UUID `gorm:"type:uuid;not null;index" json:"tokoId"`

	Toko *Toko `gorm:"foreignKey:TokoID" json:"toko,omitempty"`
}

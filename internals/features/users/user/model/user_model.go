package model

import (
	"time"
)

// UserModel merepresentasikan tabel users di database.
// IsActive adalah soft-delete flag; record user tidak pernah dihapus.
type UserModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"size:120;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"size:100;not null" json:"-" validate:"required,min=8"`
	FullName  string    `gorm:"size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Age       int       `gorm:"not null" json:"age" validate:"required,gte=1,lte=150"`
	Role      string    `gorm:"type:varchar(10);not null;default:'user'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

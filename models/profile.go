package models

import "time"

type Role string

const (
	RoleConsumer Role = "consumer"
	RoleFBO      Role = "fbo" // Food Business Owner (seller)
	RoleAdmin    Role = "admin"
)

type Profile struct {
	ID              string `gorm:"primaryKey" json:"id"`
	Email           string `gorm:"unique;not null" json:"email"`
	PasswordHash    string `gorm:"not null" json:"-"`
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Role            Role   `gorm:"type:VARCHAR(20);default:'consumer'" json:"role"`
	BusinessName    string `json:"business_name,omitempty"`
	BusinessAddress string `json:"business_address,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`

	Products  []Product  `gorm:"foreignKey:SellerID" json:"-"`
	CartItems []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order    `gorm:"foreignKey:BuyerID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

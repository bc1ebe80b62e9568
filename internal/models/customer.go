package models

// Customer represents a customer of the store.
//
// Active is a pointer so a payload that omits the field (or carries a
// non-boolean value, which fails JSON decoding) can be told apart from an
// explicit false.
type Customer struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(100);not null" validate:"required"`
	Password string `json:"password" gorm:"type:varchar(255);not null" validate:"required"`
	Email    string `json:"email" gorm:"type:varchar(255);not null" validate:"required"`
	Address  string `json:"address" gorm:"type:varchar(255);not null" validate:"required"`
	Active   *bool  `json:"active" gorm:"not null" validate:"required"`
}

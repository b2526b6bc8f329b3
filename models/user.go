package models

import "gorm.io/gorm"

// User carries the identity fields the admin needs when enriching bid and
// revert listings. Wallet state lives in Fund, keyed by the same UID.
type User struct {
	gorm.Model

	UID         string `gorm:"uniqueIndex;size:64" json:"uid"`
	Username    string `gorm:"size:64" json:"username"`
	Phone       string `gorm:"size:32" json:"phone"`
	Email       string `gorm:"size:128" json:"email"`
	DeviceToken string `gorm:"size:255" json:"device_token"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

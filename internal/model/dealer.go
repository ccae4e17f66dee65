package model

import "time"

// Dealer is a vendor account selling variants under grouped products
type Dealer struct {
	ID          uint         `json:"id" gorm:"primarykey"`
	Login       string       `json:"login" gorm:"type:varchar(100);unique;not null"`
	Email       string       `json:"email" gorm:"type:varchar(255);unique;not null"`
	DisplayName string       `json:"display_name" gorm:"type:varchar(255)"`
	Region      string       `json:"region" gorm:"type:varchar(100)"`
	City        string       `json:"city" gorm:"type:varchar(100)"`
	Meta        []DealerMeta `json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// DealerMeta is one metadata entry attached to a dealer profile.
// A key may appear on multiple rows to hold a list value.
type DealerMeta struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	DealerID uint   `json:"dealer_id" gorm:"index;not null"`
	Key      string `json:"key" gorm:"type:varchar(200);not null"`
	Value    string `json:"value" gorm:"type:text"`
}

package entity

import "time"

// PartnerType distinguishes counterparties on inbound vs outbound orders.
const (
	PartnerTypeCustomer = "customer"
	PartnerTypeSupplier = "supplier"
)

// Partner is an external counterparty (supplier or customer).
type Partner struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Code      string    `json:"code" gorm:"size:50;not null;uniqueIndex"`
	Type      string    `json:"type" gorm:"size:20;not null"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Partner) TableName() string {
	return "partners"
}

package models

import "time"

// PaymentStatus is the host-visible payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusPaid       PaymentStatus = "paid"
)

// Address holds the billing contact captured at checkout. StateAbbr and
// CountryISO3 are optional; the gateway payload includes them only when set.
type Address struct {
	FirstName   string `gorm:"column:first_name;size:100" json:"first_name"`
	LastName    string `gorm:"column:last_name;size:100" json:"last_name"`
	Email       string `gorm:"column:email;size:200" json:"email"`
	Address1    string `gorm:"column:address1;size:300" json:"address1"`
	City        string `gorm:"column:city;size:100" json:"city"`
	Zip         string `gorm:"column:zip;size:20" json:"zip"`
	Phone       string `gorm:"column:phone;size:30" json:"phone"`
	StateAbbr   string `gorm:"column:state_abbr;size:10" json:"state_abbr"`
	CountryISO3 string `gorm:"column:country_iso3;size:3" json:"country_iso3"`
}

// Order maps to the `orders` table. The order record is owned by the host
// platform; this service only reads it and requests payment-state
// transitions through the order-processing service.
type Order struct {
	ID            uint          `gorm:"column:id;primaryKey" json:"id"`
	CustomerID    uint          `gorm:"column:customer_id;index" json:"customer_id"`
	Total         float64       `gorm:"column:total" json:"total"`
	CurrencyID    uint          `gorm:"column:currency_id" json:"currency_id"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;size:20;default:pending;index" json:"payment_status"`
	Deleted       bool          `gorm:"column:deleted" json:"deleted"`
	Billing       Address       `gorm:"embedded;embeddedPrefix:billing_" json:"billing"`
	CreatedAt     time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"column:updated_at" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

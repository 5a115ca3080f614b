package models

// Currency maps to the `currencies` table. Code is the ISO currency code
// sent to the gateway as OrderCurrency.
type Currency struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:10" json:"code"`
	Name string `gorm:"column:name;size:100" json:"name"`
}

func (Currency) TableName() string {
	return "currencies"
}

package models

// PaySetting maps to the `pay_settings` key-value table holding the gateway
// configuration. Written only through the admin configuration form.
type PaySetting struct {
	Name  string `gorm:"column:name;primaryKey;size:100" json:"name"`
	Value string `gorm:"column:value;size:500" json:"value"`
}

func (PaySetting) TableName() string {
	return "pay_settings"
}

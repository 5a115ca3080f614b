package repository

import (
	"strconv"

	"gorm.io/gorm"

	"assistpay/internal/assist"
	"assistpay/internal/models"
)

// Setting keys in the pay_settings table.
const (
	SettingEnabled           = "enabled"
	SettingMerchantID        = "merchant_id"
	SettingLogin             = "login"
	SettingPassword          = "password"
	SettingGatewayURL        = "gateway_url"
	SettingTestMode          = "test_mode"
	SettingAuthorizeOnly     = "authorize_only"
	SettingAdditionalFee     = "additional_fee"
	SettingPrimaryCurrencyID = "primary_currency_id"
)

// SettingRepository handles the gateway configuration key-value table.
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns a single setting value, or "" when the key is absent.
func (r *SettingRepository) Get(name string) (string, error) {
	var ps models.PaySetting
	if err := r.db.Where("name = ?", name).First(&ps).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return ps.Value, nil
}

// Set inserts or updates a setting.
func (r *SettingRepository) Set(name, value string) error {
	return r.db.Save(&models.PaySetting{Name: name, Value: value}).Error
}

// LoadAssist reads the whole configuration into an immutable snapshot.
// Absent keys become zero values; Settings.Validate decides whether the
// snapshot is usable.
func (r *SettingRepository) LoadAssist() (*assist.Settings, error) {
	var rows []models.PaySetting
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Name] = row.Value
	}

	fee, _ := strconv.ParseFloat(values[SettingAdditionalFee], 64)
	currencyID, _ := strconv.ParseUint(values[SettingPrimaryCurrencyID], 10, 32)

	return &assist.Settings{
		Enabled:           parseBool(values[SettingEnabled]),
		MerchantID:        values[SettingMerchantID],
		Login:             values[SettingLogin],
		Password:          values[SettingPassword],
		GatewayURL:        values[SettingGatewayURL],
		TestMode:          parseBool(values[SettingTestMode]),
		AuthorizeOnly:     parseBool(values[SettingAuthorizeOnly]),
		AdditionalFee:     fee,
		PrimaryCurrencyID: uint(currencyID),
	}, nil
}

// SaveAssist persists a new configuration snapshot, one explicit write per
// key. The snapshot itself is never mutated in place.
func (r *SettingRepository) SaveAssist(s *assist.Settings) error {
	pairs := map[string]string{
		SettingEnabled:           formatBool(s.Enabled),
		SettingMerchantID:        s.MerchantID,
		SettingLogin:             s.Login,
		SettingPassword:          s.Password,
		SettingGatewayURL:        s.GatewayURL,
		SettingTestMode:          formatBool(s.TestMode),
		SettingAuthorizeOnly:     formatBool(s.AuthorizeOnly),
		SettingAdditionalFee:     strconv.FormatFloat(s.AdditionalFee, 'f', 2, 64),
		SettingPrimaryCurrencyID: strconv.FormatUint(uint64(s.PrimaryCurrencyID), 10),
	}
	for name, value := range pairs {
		if err := r.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

func parseBool(v string) bool {
	return v == "1" || v == "true"
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

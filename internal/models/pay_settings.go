package models

import (
	"errors"
	"time"

	"github.com/my-budget-mate/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaySettings is the singleton row describing the user's pay cycle: the
// frequency income arrives at, the income per pay and the date the
// current cycle started.
type PaySettings struct {
	DefaultModel
	PayFrequency   types.Frequency
	PerPayIncome   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CycleStartDate *time.Time
}

func (s *PaySettings) BeforeSave(_ *gorm.DB) error {
	if s.PayFrequency == "" {
		s.PayFrequency = types.FrequencyFortnightly
	}

	return nil
}

// GetPaySettings returns the settings row, creating it with defaults on
// first access.
func GetPaySettings() (PaySettings, error) {
	var settings PaySettings

	err := DB.First(&settings).Error
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return PaySettings{}, err
	}

	settings = PaySettings{
		PayFrequency: types.FrequencyFortnightly,
		PerPayIncome: decimal.Zero,
	}

	err = DB.Create(&settings).Error
	if err != nil {
		return PaySettings{}, err
	}

	return settings, nil
}

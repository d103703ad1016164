package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transfer moves money from one envelope to another.
type Transfer struct {
	DefaultModel
	FromEnvelopeID uuid.UUID
	FromEnvelope   Envelope        `json:"-"`
	ToEnvelopeID   uuid.UUID
	ToEnvelope     Envelope        `json:"-"`
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note           string
}

func (t *Transfer) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	return nil
}

// ApplyTransfer records the transfer and moves the amount between the two
// envelope balances in a single database transaction.
func ApplyTransfer(t *Transfer) error {
	if !t.Amount.IsPositive() {
		return ErrTransferAmountNotPositive
	}

	if t.FromEnvelopeID == t.ToEnvelopeID {
		return ErrTransferSameEnvelope
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		var from, to Envelope

		err := tx.First(&from, t.FromEnvelopeID).Error
		if err != nil {
			return err
		}

		err = tx.First(&to, t.ToEnvelopeID).Error
		if err != nil {
			return err
		}

		err = tx.Model(&from).Select("Balance").Updates(Envelope{Balance: from.Balance.Sub(t.Amount)}).Error
		if err != nil {
			return err
		}

		err = tx.Model(&to).Select("Balance").Updates(Envelope{Balance: to.Balance.Add(t.Amount)}).Error
		if err != nil {
			return err
		}

		return tx.Create(t).Error
	})
}

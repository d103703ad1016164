package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an imported bank statement line. Negative amounts are
// money leaving the account.
type Transaction struct {
	DefaultModel
	Date       time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Payee      string
	Note       string
	AccountID  uuid.UUID
	Account    Account         `json:"-"`
	EnvelopeID *uuid.UUID      // The envelope the line was matched to, if any
	Envelope   *Envelope       `json:"-"`
	// Hash over the raw statement line, deduplicates re-imports. The
	// index is partial so that transactions created by hand do not
	// collide on the empty hash.
	ImportHash string `gorm:"uniqueIndex:idx_transactions_import_hash,where:import_hash != ''"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the account the transaction references
// exists.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	return tx.First(&Account{}, toSave.AccountID).Error
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Payee = strings.TrimSpace(t.Payee)
	t.Note = strings.TrimSpace(t.Note)

	return nil
}

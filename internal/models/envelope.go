package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/calc"
	"github.com/my-budget-mate/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Envelope is a budget category with a funding target, a funding
// frequency and a running balance.
type Envelope struct {
	DefaultModel
	Name           string          `gorm:"uniqueIndex:envelope_category_name"`
	CategoryID     uuid.UUID       `gorm:"uniqueIndex:envelope_category_name"`
	Category       Category        `json:"-"`
	Note           string
	TargetAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // How much the envelope needs per Frequency
	Frequency      types.Frequency
	PerPayAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Contribution per pay cycle, recomputed from the target on every write
	OpeningBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Balance        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate        *time.Time
	Priority       types.Priority
	Archived       bool
}

func (e *Envelope) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Envelope)
	return e.checkIntegrity(tx, *toSave)
}

func (e *Envelope) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Envelope)

	if tx.Statement.Changed("CategoryID") {
		err := e.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the category the envelope references
// exists.
func (e *Envelope) checkIntegrity(tx *gorm.DB, toSave Envelope) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	if e.Frequency == "" {
		e.Frequency = types.FrequencyNone
	}

	if e.Priority == "" {
		e.Priority = types.PriorityImportant
	}

	return nil
}

func (e *Envelope) AfterSave(_ *gorm.DB) error {
	if e.TargetAmount.IsNegative() {
		return ErrEnvelopeTargetNegative
	}

	return nil
}

// State maps the envelope into the typed view the calculation core
// consumes. The core never touches the database layer.
func (e Envelope) State() calc.EnvelopeState {
	return calc.EnvelopeState{
		ID:             e.ID,
		Name:           e.Name,
		Priority:       e.Priority,
		TargetAmount:   e.TargetAmount,
		Frequency:      e.Frequency,
		PerPayAmount:   e.PerPayAmount,
		OpeningBalance: e.OpeningBalance,
		Balance:        e.Balance,
		DueDate:        e.DueDate,
	}
}

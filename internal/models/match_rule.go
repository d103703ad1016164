package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRule maps a payee glob pattern to an envelope. Rules are applied
// in ascending priority order; the first matching rule wins.
type MatchRule struct {
	DefaultModel
	Priority   uint
	Match      string
	EnvelopeID uuid.UUID
	Envelope   Envelope `json:"-"`
}

func (m *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = m.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*MatchRule)
	return m.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the envelope the rule references exists.
func (m *MatchRule) checkIntegrity(tx *gorm.DB, toSave MatchRule) error {
	return tx.First(&Envelope{}, toSave.EnvelopeID).Error
}

func (m *MatchRule) BeforeSave(_ *gorm.DB) error {
	m.Match = strings.TrimSpace(m.Match)
	if m.Match == "" {
		return ErrMatchRuleMatchEmpty
	}

	return nil
}

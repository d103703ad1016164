// Package importer implements the parsing of bank statement exports and
// the match rule assignment of statement lines to envelopes.
package importer

import (
	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/models"
)

// TransactionPreview is a parsed statement line before it is persisted.
// The envelope assignment happens after parsing, via match rules on the
// payee.
type TransactionPreview struct {
	Transaction models.Transaction `json:"transaction"`
	MatchRuleID uuid.UUID          `json:"matchRuleId"` // The match rule that assigned the envelope, if any
}

package models_test

import (
	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchRuleBeforeCreate() {
	envelope := suite.createTestEnvelope(models.Envelope{
		CategoryID: suite.createTestCategory(models.Category{}).ID,
	})

	_ = suite.createTestMatchRule(models.MatchRule{
		Match:      "Superstore*",
		EnvelopeID: envelope.ID,
	})

	err := models.DB.Create(&models.MatchRule{
		Match:      "Superstore*",
		EnvelopeID: uuid.New(),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMatchRuleEmptyMatch() {
	envelope := suite.createTestEnvelope(models.Envelope{
		CategoryID: suite.createTestCategory(models.Category{}).ID,
	})

	err := models.DB.Create(&models.MatchRule{
		Match:      "   ",
		EnvelopeID: envelope.ID,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrMatchRuleMatchEmpty)
}

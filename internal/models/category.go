package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category groups envelopes.
type Category struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Archived bool
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}

// Envelopes returns the envelopes for the category.
func (c Category) Envelopes(db *gorm.DB) ([]Envelope, error) {
	var envelopes []Envelope

	err := db.Where(&Envelope{CategoryID: c.ID}).Order("name ASC").Find(&envelopes).Error
	if err != nil {
		return []Envelope{}, err
	}

	return envelopes, nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	ImageRef    string          `json:"-"`
	Category    string          `json:"category"`
	Features    []string        `json:"features"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductChanges carries a partial update. Nil fields are left untouched.
type ProductChanges struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Features    []string
	SetFeatures bool
	ImageURL    *string
	ImageRef    *string
}

func (p *Product) Apply(ch ProductChanges) {
	if ch.Name != nil {
		p.Name = *ch.Name
	}
	if ch.Description != nil {
		p.Description = *ch.Description
	}
	if ch.Price != nil {
		p.Price = *ch.Price
	}
	if ch.Category != nil {
		p.Category = *ch.Category
	}
	if ch.SetFeatures {
		p.Features = ch.Features
	}
	if ch.ImageURL != nil {
		p.ImageURL = *ch.ImageURL
	}
	if ch.ImageRef != nil {
		p.ImageRef = *ch.ImageRef
	}
}

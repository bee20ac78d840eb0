package catalog

import (
	"errors"
	"time"
)

// Product is a catalog entry. Price is per unit; StBun is how many units a
// box holds, so the box price is Price*StBun.
type Product struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	BoxType     string    `json:"boxType"`
	UnitType    string    `json:"unitType"`
	StBun       int       `json:"stBun"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p Product) BoxPrice() float64 { return p.Price * float64(p.StBun) }

type ProductInput struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	BoxType     string  `json:"boxType"`
	UnitType    string  `json:"unitType"`
	StBun       int     `json:"stBun"`
	Price       float64 `json:"price"`
}

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidInput = errors.New("invalid product input")
)

func (in ProductInput) Validate() error {
	if in.Description == "" {
		return errors.Join(ErrInvalidInput, errors.New("description is required"))
	}
	if in.StBun < 1 {
		return errors.Join(ErrInvalidInput, errors.New("stBun must be at least 1"))
	}
	if in.Price < 0 {
		return errors.Join(ErrInvalidInput, errors.New("price must not be negative"))
	}
	return nil
}

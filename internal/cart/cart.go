package cart

import (
	"time"

	"github.com/floramajestyc/catalog-service/internal/catalog"
)

// Item is a product snapshot plus a quantity. The fields are copied from the
// product at add time, so deleting a catalog entry leaves existing carts with
// their last-known values.
type Item struct {
	ProductID   int64   `json:"productId"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	BoxType     string  `json:"boxType"`
	UnitType    string  `json:"unitType"`
	StBun       int     `json:"stBun"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type Cart struct {
	ID        string    `json:"id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AddProduct bumps the quantity when the product is already in the cart,
// otherwise appends a new item with quantity 1. Insertion order is preserved.
func (c *Cart) AddProduct(p catalog.Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID:   p.ID,
		Category:    p.Category,
		Description: p.Description,
		BoxType:     p.BoxType,
		UnitType:    p.UnitType,
		StBun:       p.StBun,
		Price:       p.Price,
		Quantity:    1,
	})
}

// UpdateQuantity sets the quantity for a product; zero or below removes the
// item entirely. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(productID int64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() { c.Items = nil }

func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

// LineTotal is the price of one box (unit price times units per box) times
// the number of boxes ordered. Rounding happens only when formatting.
func LineTotal(it Item) float64 {
	return it.Price * float64(it.StBun) * float64(it.Quantity)
}

func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += LineTotal(it)
	}
	return total
}

// ItemCount sums quantities, not distinct products.
func (c *Cart) ItemCount() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

package entity

// CartLine is one row in the shopping cart, keyed by product id. The
// name, price, image and brand fields are a snapshot taken when the
// product was first added; later catalog changes do not touch them.
type CartLine struct {
	ID       string  `json:"id" firestore:"id"`
	Name     string  `json:"name" firestore:"name"`
	Price    float64 `json:"price" firestore:"price"`
	Image    string  `json:"image" firestore:"image"`
	Brand    string  `json:"brand" firestore:"brand"`
	Quantity int     `json:"quantity" firestore:"quantity"`
}

// Cart is the in-memory ledger of lines for one session. Lines keep
// their insertion order and ids are unique; every line holds a quantity
// of at least 1.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges quantity into an existing line for the same product, or
// appends a new line with a snapshot of the product's display fields.
// The product's stock is not touched.
func (c *Cart) Add(p *Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Brand:    p.Brand,
		Quantity: quantity,
	})
}

// UpdateQuantity replaces the quantity of the line for id. Quantities
// below 1 are ignored: dropping a line takes an explicit RemoveItem, a
// decrement never deletes silently.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for id; absent ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Snapshot returns a detached copy of the cart. Mutating either cart
// afterwards leaves the other untouched.
func (c *Cart) Snapshot() *Cart {
	return &Cart{lines: c.Lines()}
}

// Deduct subtracts the given quantities from matching lines, dropping
// lines that reach zero. Ids with no line are ignored. Checkout uses
// this to settle exactly what was charged, so lines added while a
// charge was in flight survive.
func (c *Cart) Deduct(lines []CartLine) {
	for _, charged := range lines {
		for i := range c.lines {
			if c.lines[i].ID == charged.ID {
				c.lines[i].Quantity -= charged.Quantity
				if c.lines[i].Quantity < 1 {
					c.lines = append(c.lines[:i], c.lines[i+1:]...)
				}
				break
			}
		}
	}
}

// Lines returns a copy of the ledger in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Count is the sum of quantities across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Total is the sum of price times quantity across all lines, kept at
// full float64 precision.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

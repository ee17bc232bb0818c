package entity

// View identifies one of the storefront's mutually exclusive screens.
type View string

const (
	ViewHome          View = "home"
	ViewProductDetail View = "product-detail"
	ViewCart          View = "cart"
)

// Navigator is a single-slot view machine: home can open either the
// product detail or the cart, and both return to home. There is no
// history stack and no direct edge between product detail and cart.
type Navigator struct {
	view     View
	selected *Product
}

func NewNavigator() *Navigator {
	return &Navigator{view: ViewHome}
}

func (n *Navigator) View() View {
	return n.view
}

// Selected returns the product under the product-detail view, nil
// otherwise.
func (n *Navigator) Selected() *Product {
	return n.selected
}

// GoToProduct opens the detail view for p. Selecting while already on
// the detail view just replaces the reference.
func (n *Navigator) GoToProduct(p *Product) bool {
	if p == nil {
		return false
	}
	if n.view != ViewHome && n.view != ViewProductDetail {
		return false
	}
	n.view = ViewProductDetail
	n.selected = p
	return true
}

// GoToCart opens the cart. The cart is only reachable from home.
func (n *Navigator) GoToCart() bool {
	if n.view != ViewHome && n.view != ViewCart {
		return false
	}
	n.view = ViewCart
	return true
}

// GoHome returns to the home view and drops any selected product.
func (n *Navigator) GoHome() {
	n.view = ViewHome
	n.selected = nil
}

package domain

type CartLine struct {
	Product  Product
	Quantity int
}

// Cart holds the ordered cart lines. Order is insertion order and survives
// persistence round trips. At most one line exists per product id, and a
// line never carries a quantity below one.
type Cart struct {
	Lines []CartLine
}

type CartAction interface {
	isCartAction()
}

type AddItem struct {
	Product Product
}

type RemoveItem struct {
	ProductID ProductID
}

type SetQuantity struct {
	ProductID ProductID
	Quantity  int
}

type ClearCart struct{}

// HydrateCart replaces the cart wholesale with previously persisted lines.
// It is dispatched once, at startup.
type HydrateCart struct {
	Lines []CartLine
}

func (AddItem) isCartAction()     {}
func (RemoveItem) isCartAction()  {}
func (SetQuantity) isCartAction() {}
func (ClearCart) isCartAction()   {}
func (HydrateCart) isCartAction() {}

// ReduceCart applies a single action and returns the resulting cart. The
// input cart is never mutated.
func ReduceCart(state Cart, action CartAction) Cart {
	switch a := action.(type) {
	case AddItem:
		for i, line := range state.Lines {
			if line.Product.ID == a.Product.ID {
				lines := copyLines(state.Lines)
				lines[i].Quantity++
				return Cart{Lines: lines}
			}
		}
		lines := copyLines(state.Lines)
		lines = append(lines, CartLine{Product: a.Product, Quantity: 1})
		return Cart{Lines: lines}

	case RemoveItem:
		return Cart{Lines: withoutLine(state.Lines, a.ProductID)}

	case SetQuantity:
		if a.Quantity <= 0 {
			return Cart{Lines: withoutLine(state.Lines, a.ProductID)}
		}
		lines := copyLines(state.Lines)
		for i := range lines {
			if lines[i].Product.ID == a.ProductID {
				lines[i].Quantity = a.Quantity
			}
		}
		return Cart{Lines: lines}

	case ClearCart:
		return Cart{}

	case HydrateCart:
		return Cart{Lines: normalizeLines(a.Lines)}

	default:
		return state
	}
}

func (c Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

func (c Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

func copyLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}

func withoutLine(lines []CartLine, id ProductID) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Product.ID == id {
			continue
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// normalizeLines drops empty or non-positive lines and collapses duplicate
// product ids, keeping the first occurrence. Persisted payloads are the only
// source of lines that may violate the cart invariants.
func normalizeLines(lines []CartLine) []CartLine {
	out := make([]CartLine, 0, len(lines))
	seen := make(map[ProductID]struct{}, len(lines))
	for _, line := range lines {
		if line.Product.ID == "" || line.Quantity <= 0 {
			continue
		}
		if _, ok := seen[line.Product.ID]; ok {
			continue
		}
		seen[line.Product.ID] = struct{}{}
		out = append(out, line)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

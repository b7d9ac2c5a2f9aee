package domain

// Merge resolves the new state of a toy from its stored state and a partial
// update. A patch field replaces the stored value only when it was sent and
// is not the zero value, so an explicit 0 or "" keeps the old value.
// ID and SellerEmail are never changed.
func Merge(existing Toy, p ToyPatch) Toy {
	out := existing
	out.ToyName = pick(existing.ToyName, p.ToyName)
	out.Price = pick(existing.Price, p.Price)
	out.PhotoURL = pick(existing.PhotoURL, p.PhotoURL)
	out.AvailableQuantity = pick(existing.AvailableQuantity, p.AvailableQuantity)
	out.Ratings = pick(existing.Ratings, p.Ratings)
	out.Description = pick(existing.Description, p.Description)
	out.Category = pick(existing.Category, p.Category)
	return out
}

func pick[T comparable](cur T, in *T) T {
	var zero T
	if in == nil || *in == zero {
		return cur
	}
	return *in
}

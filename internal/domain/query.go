package domain

// CategoryLimit caps every category listing.
const CategoryLimit = 5

// SearchIndexName is the name of the secondary index on toyName.
const SearchIndexName = "searchByToyName"

// Direction orders listings by price. DirNone leaves order to the store.
type Direction int

const (
	DirNone Direction = iota
	DirAsc
	DirDesc
)

func (d Direction) String() string {
	switch d {
	case DirAsc:
		return "asc"
	case DirDesc:
		return "desc"
	}
	return "none"
}

// ListQuery is the typed form of GET /toys parameters.
// A nil Limit means unbounded.
type ListQuery struct {
	Limit     *int
	Sort      Direction
	PhotoOnly bool
}

// Filter is an equality filter over the recognised toy fields.
// Nil fields do not constrain the result.
type Filter struct {
	ToyName     *string
	Category    *string
	SellerEmail *string
}

// Empty reports whether the filter matches every toy.
func (f Filter) Empty() bool {
	return f.ToyName == nil && f.Category == nil && f.SellerEmail == nil
}

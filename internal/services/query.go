package services

import (
	"fmt"
	"sort"

	"toystore/internal/domain"
	"toystore/internal/validate"
)

// ParseListQuery shapes GET /toys parameters. Other keys are ignored.
func ParseListQuery(raw map[string]string) domain.ListQuery {
	return domain.ListQuery{
		Limit:     validate.Limit(raw["limit"]),
		Sort:      validate.Sort(raw["sort"]),
		PhotoOnly: validate.Flag(raw["photoLink"]),
	}
}

// ParseFilter turns query parameters into an equality filter. "email" is
// accepted as a short form of "sellerEmail". Any other key is rejected.
func ParseFilter(raw map[string]string) (domain.Filter, error) {
	var f domain.Filter
	var unknown []string
	for k, v := range raw {
		switch k {
		case "toyName":
			f.ToyName = &v
		case "category":
			f.Category = &v
		case "sellerEmail", "email":
			f.SellerEmail = &v
		default:
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return domain.Filter{}, fmt.Errorf("%w: %q", domain.ErrUnknownFilter, unknown)
	}
	return f, nil
}

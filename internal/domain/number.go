package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Num is a JSON number that also accepts numeric strings. An empty string
// decodes to 0, which the merge treats as "not sent".
type Num float64

func (n *Num) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		*n = Num(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Num(f)
	return nil
}

// UnmarshalJSON coerces price, availableQuantity and ratings from strings.
func (t *Toy) UnmarshalJSON(b []byte) error {
	type plain Toy
	aux := struct {
		*plain
		Price             Num `json:"price"`
		AvailableQuantity Num `json:"availableQuantity"`
		Ratings           Num `json:"ratings"`
	}{
		plain:             (*plain)(t),
		Price:             Num(t.Price),
		AvailableQuantity: Num(t.AvailableQuantity),
		Ratings:           Num(t.Ratings),
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	t.Price = float64(aux.Price)
	t.AvailableQuantity = int(aux.AvailableQuantity)
	t.Ratings = float64(aux.Ratings)
	return nil
}

func (p *ToyPatch) UnmarshalJSON(b []byte) error {
	type plain ToyPatch
	var aux struct {
		*plain
		Price             *Num `json:"price"`
		AvailableQuantity *Num `json:"availableQuantity"`
		Ratings           *Num `json:"ratings"`
	}
	aux.plain = (*plain)(p)
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Price != nil {
		v := float64(*aux.Price)
		p.Price = &v
	}
	if aux.AvailableQuantity != nil {
		v := int(*aux.AvailableQuantity)
		p.AvailableQuantity = &v
	}
	if aux.Ratings != nil {
		v := float64(*aux.Ratings)
		p.Ratings = &v
	}
	return nil
}

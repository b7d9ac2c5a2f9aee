package handlers

import (
	"toystore/internal/services"
)

type Deps struct {
	ToyHandler *ToyHandler
}

func NewDeps(store services.ToyStore) *Deps {
	toySvc := services.NewToyService(store)

	return &Deps{
		ToyHandler: &ToyHandler{Toys: toySvc},
	}
}

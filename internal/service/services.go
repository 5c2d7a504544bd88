package service

import (
	"github.com/hwalton/snapcram/internal/api"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/internal/store"
)

// Services bundles the client's business-logic services.
type Services struct {
	Session SessionService
	Decks   DeckService
}

// NewServices wires the services over the local store and backend adapter.
func NewServices(localStore *store.Storages, serverAdapter api.ServerAdapter, log *logger.Logger) *Services {
	return &Services{
		Session: NewSessionService(localStore, serverAdapter, log),
		Decks:   NewDeckService(localStore, serverAdapter, log),
	}
}

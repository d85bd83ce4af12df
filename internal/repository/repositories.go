package repository

import (
	"github.com/deppfellow/items-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// Services receive the container instead of individual stores, the same way
// handlers receive *service.Services.
type Repositories struct {
	Items *ItemStore
}

// NewRepositories constructs the repository container.
//
// Every call creates fresh, empty stores; the server builds it once at startup.
func NewRepositories(s *server.Server) *Repositories {
	s.Logger.Debug().Msg("initializing in-memory item store")

	return &Repositories{
		Items: NewItemStore(),
	}
}

package service

import (
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
)

// Services is a container for all business services.
type Services struct {
	Items *ItemService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Items: NewItemService(s, repos.Items),
	}, nil
}

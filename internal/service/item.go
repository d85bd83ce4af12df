package service

import (
	"context"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/rs/zerolog"
)

// ItemNotFoundMessage is the detail returned whenever an id does not exist.
const ItemNotFoundMessage = "Item not found"

// ItemRepository is the storage the item service depends on.
// *repository.ItemStore satisfies it.
type ItemRepository interface {
	List() []model.Item
	Get(id int64) (model.Item, bool)
	Create(name string, description *string) model.Item
	Update(id int64, patch model.ItemPatch) (model.Item, bool)
	Delete(id int64) bool
}

// ItemService implements the item use cases on top of an ItemRepository.
//
// Requests reach it already validated; its job is turning a missing id
// into a 404 and logging what changed.
type ItemService struct {
	server *server.Server
	repo   ItemRepository
}

func NewItemService(s *server.Server, repo ItemRepository) *ItemService {
	return &ItemService{
		server: s,
		repo:   repo,
	}
}

func (s *ItemService) ListItems(ctx context.Context) []model.Item {
	items := s.repo.List()

	zerolog.Ctx(ctx).Debug().Int("count", len(items)).Msg("listed items")

	return items
}

func (s *ItemService) CreateItem(ctx context.Context, req *model.CreateItemRequest) *model.Item {
	item := s.repo.Create(req.Name, req.Description)

	zerolog.Ctx(ctx).Info().
		Int64("item_id", item.ID).
		Str("event", "item_created").
		Msg("item created")

	return &item
}

func (s *ItemService) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	item, ok := s.repo.Get(id)
	if !ok {
		return nil, itemNotFound(ctx, id)
	}

	return &item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, req *model.UpdateItemRequest) (*model.Item, error) {
	item, ok := s.repo.Update(req.ID, req.Patch())
	if !ok {
		return nil, itemNotFound(ctx, req.ID)
	}

	zerolog.Ctx(ctx).Info().
		Int64("item_id", item.ID).
		Bool("name_changed", req.Name.HasValue()).
		Bool("description_changed", req.Description.Set).
		Str("event", "item_updated").
		Msg("item updated")

	return &item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	if !s.repo.Delete(id) {
		return itemNotFound(ctx, id)
	}

	zerolog.Ctx(ctx).Info().
		Int64("item_id", id).
		Str("event", "item_deleted").
		Msg("item deleted")

	return nil
}

func itemNotFound(ctx context.Context, id int64) error {
	zerolog.Ctx(ctx).Debug().Int64("item_id", id).Msg("item not found")
	return errs.NewNotFoundError(ItemNotFoundMessage, nil)
}

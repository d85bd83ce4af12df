package handler

import (
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ItemHandler exposes the item CRUD endpoints. Each method receives an
// already bound and validated payload from Handle.
type ItemHandler struct {
	Handler
	itemService *service.ItemService
}

func NewItemHandler(s *server.Server, itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler:     NewHandler(s),
		itemService: itemService,
	}
}

func (h *ItemHandler) ListItems(c echo.Context, _ *model.ListItemsRequest) ([]model.Item, error) {
	return h.itemService.ListItems(c.Request().Context()), nil
}

func (h *ItemHandler) CreateItem(c echo.Context, req *model.CreateItemRequest) (*model.Item, error) {
	return h.itemService.CreateItem(c.Request().Context(), req), nil
}

func (h *ItemHandler) GetItem(c echo.Context, req *model.ItemIDRequest) (*model.Item, error) {
	return h.itemService.GetItem(c.Request().Context(), req.ID)
}

func (h *ItemHandler) UpdateItem(c echo.Context, req *model.UpdateItemRequest) (*model.Item, error) {
	return h.itemService.UpdateItem(c.Request().Context(), req)
}

func (h *ItemHandler) DeleteItem(c echo.Context, req *model.ItemIDRequest) error {
	return h.itemService.DeleteItem(c.Request().Context(), req.ID)
}

package router

import (
	"net/http"

	"github.com/deppfellow/items-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerItemRoutes mounts the item CRUD under /items.
// The collection answers both with and without the trailing slash.
func registerItemRoutes(api *echo.Group, h *handler.Handlers) {
	items := api.Group("/items")

	list := handler.Handle(h.Item.Handler, h.Item.ListItems, http.StatusOK)
	create := handler.Handle(h.Item.Handler, h.Item.CreateItem, http.StatusCreated)

	for _, path := range []string{"", "/"} {
		items.GET(path, list)
		items.POST(path, create)
	}

	items.GET("/:id", handler.Handle(h.Item.Handler, h.Item.GetItem, http.StatusOK))
	items.PATCH("/:id", handler.Handle(h.Item.Handler, h.Item.UpdateItem, http.StatusOK))
	items.DELETE("/:id", handler.HandleNoContent(h.Item.Handler, h.Item.DeleteItem, http.StatusNoContent))
}

package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/catalog-api/internal/handler"
)

func registerPageRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.HandleHTML(h.Base, h.Home.ListProductsPage, http.StatusOK, handler.ProductsTemplate))
}

func registerNoteRoutes(api *echo.Group, h *handler.Handlers) {
	notes := api.Group("/notes")

	notes.GET("", handler.Handle(h.Base, h.Notes.ListNotes, http.StatusOK))
	notes.POST("", handler.Handle(h.Base, h.Notes.CreateNote, http.StatusOK))
	notes.GET("/:id", handler.Handle(h.Base, h.Notes.GetNote, http.StatusOK))
	notes.PATCH("/:id", handler.Handle(h.Base, h.Notes.UpdateNote, http.StatusOK))
	notes.DELETE("/:id", handler.HandleNoContent(h.Base, h.Notes.DeleteNote, http.StatusOK))
}

func registerProductRoutes(api *echo.Group, h *handler.Handlers) {
	products := api.Group("/products")

	products.GET("", handler.Handle(h.Base, h.Products.ListProducts, http.StatusOK))
	products.POST("", handler.Handle(h.Base, h.Products.CreateProduct, http.StatusOK))
	products.GET("/:id", handler.Handle(h.Base, h.Products.GetProduct, http.StatusOK))
	products.PATCH("/:id", handler.Handle(h.Base, h.Products.UpdateProduct, http.StatusOK))
	products.DELETE("/:id", handler.HandleNoContent(h.Base, h.Products.DeleteProduct, http.StatusOK))
}

package routes

import (
	"github.com/shashiranjanraj/catalog/app/controllers"
	"github.com/shashiranjanraj/catalog/pkg/router"
)

// ObjectIDPattern restricts {id} to a 24-char hex ObjectID; anything else
// falls through to the 404 handler.
const ObjectIDPattern = "{id:[a-fA-F0-9]{24}}"

// RegisterAPI mounts the product endpoints.
func RegisterAPI(r *router.Router, products *controllers.ProductController) {
	r.Get("/health", "health", controllers.Health)

	g := r.Group("/products")
	g.Get("/", "products.index", products.Index)
	g.Post("/", "products.store", products.Store)
	g.Get(ObjectIDPattern, "products.show", products.Show)
	g.Put(ObjectIDPattern, "products.update", products.Update)
	g.Delete(ObjectIDPattern, "products.destroy", products.Destroy)
}

// controller/controllers.go
package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/quill/service"
)

// Access holds the middleware chains protected routes are mounted behind.
// Editor and Admin assume Authenticated has already run.
type Access struct {
	Authenticated gin.HandlerFunc
	Editor        gin.HandlerFunc
	Admin         gin.HandlerFunc
}

type Controllers struct {
	Auth       *AuthController
	Post       *PostController
	Comment    *CommentController
	Taxonomy   *TaxonomyController
	Subscriber *SubscriberController
	Dashboard  *DashboardController
	Search     *SearchController
	Health     *HealthController
}

func InitializeControllers(services *service.Services, access Access) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(services.Auth, access),
		Post:       NewPostController(services.Post, access),
		Comment:    NewCommentController(services.Comment, access),
		Taxonomy:   NewTaxonomyController(services.Taxonomy, access),
		Subscriber: NewSubscriberController(services.Subscriber),
		Dashboard:  NewDashboardController(services.Dashboard, access),
		Search:     NewSearchController(services.Search),
		Health:     NewHealthController(services.Health),
	}
}

// RegisterRoutes mounts every controller on r.
func (cs *Controllers) RegisterRoutes(r *gin.RouterGroup) {
	cs.Auth.RegisterRoutes(r)
	cs.Post.RegisterRoutes(r)
	cs.Comment.RegisterRoutes(r)
	cs.Taxonomy.RegisterRoutes(r)
	cs.Subscriber.RegisterRoutes(r)
	cs.Dashboard.RegisterRoutes(r)
	cs.Search.RegisterRoutes(r)
	cs.Health.RegisterRoutes(r)
}

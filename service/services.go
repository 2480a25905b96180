// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/v9"

	"github.com/dev-mohitbeniwal/quill/audit"
	"github.com/dev-mohitbeniwal/quill/auth"
	"github.com/dev-mohitbeniwal/quill/dao"
	"github.com/dev-mohitbeniwal/quill/util"
)

type Services struct {
	Auth       IAuthService
	Post       IPostService
	Comment    ICommentService
	Taxonomy   ITaxonomyService
	Subscriber ISubscriberService
	Dashboard  IDashboardService
	Search     ISearchService
	Health     IHealthService
	Bootstrap  *BootstrapService
}

func InitializeServices(
	driver neo4j.DriverWithContext,
	redisClient *redis.Client,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	sanitizer *util.ContentSanitizer,
	cacheService *util.CacheService,
	notifier util.Notifier,
	eventBus *util.EventBus,
	hasher auth.PasswordHasher,
	codec *auth.Codec,
) (*Services, error) {
	userDAO := dao.NewUserDAO(driver)
	roleDAO := dao.NewRoleDAO(driver)
	postDAO := dao.NewPostDAO(driver)
	commentDAO := dao.NewCommentDAO(driver)
	categoryDAO := dao.NewCategoryDAO(driver)
	tagDAO := dao.NewTagDAO(driver)
	subscriberDAO := dao.NewSubscriberDAO(driver)
	dashboardDAO := dao.NewDashboardDAO(driver)

	services := &Services{
		Auth:       NewAuthService(userDAO, hasher, codec, auditService),
		Post:       NewPostService(postDAO, validationUtil, sanitizer, cacheService, auditService, eventBus),
		Comment:    NewCommentService(commentDAO, postDAO, validationUtil, sanitizer, cacheService, auditService),
		Taxonomy:   NewTaxonomyService(categoryDAO, tagDAO, validationUtil, cacheService, auditService),
		Subscriber: NewSubscriberService(subscriberDAO, validationUtil, notifier, eventBus),
		Dashboard:  NewDashboardService(dashboardDAO, cacheService, auditService),
		Search:     NewSearchService(postDAO, validationUtil, sanitizer, cacheService),
		Health:     NewHealthService(driver, redisClient),
		Bootstrap:  NewBootstrapService(roleDAO, userDAO, hasher),
	}

	return services, nil
}

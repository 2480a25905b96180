// service/invalidation.go
package service

import "github.com/dev-mohitbeniwal/quill/util"

// Namespaces whose cached reads go stale after each kind of write.
var (
	postCreatedNamespaces = []string{
		util.NSPostsList,
		util.NSSearch,
		util.NSDashboardStats,
		util.NSDashboardPosts,
		util.NSCategories,
		util.NSTags,
	}
	postChangedNamespaces = []string{
		util.NSPostsList,
		util.NSPostDetail,
		util.NSSearch,
		util.NSDashboardStats,
		util.NSDashboardPosts,
		util.NSCategories,
		util.NSTags,
	}
	categoryCreatedNamespaces = []string{util.NSCategories, util.NSSearch}
	tagCreatedNamespaces      = []string{util.NSTags}
	commentChangedNamespaces  = []string{util.NSComments}
)

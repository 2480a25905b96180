// model/neo4j/attributes.go
package quill_neo4j

// Attribute Keys
const (
	AttrID          = "id"
	AttrName        = "name"
	AttrDescription = "description"
	AttrSlug        = "slug"

	// AttrEmail is unique across users and across subscribers
	AttrEmail = "email"

	AttrRoleID      = "roleID"
	AttrIsActive    = "isActive"
	AttrIsSuperuser = "isSuperuser"
	AttrStatus      = "status"
	AttrViewCount   = "viewCount"
	AttrIsApproved  = "isApproved"
	AttrCreatedAt   = "createdAt"
	AttrUpdatedAt   = "updatedAt"

	// AttrDeletedAt marks a soft-deleted post
	AttrDeletedAt = "deletedAt"
)

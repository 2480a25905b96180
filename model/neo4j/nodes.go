// model/neo4j/nodes.go
package quill_neo4j

// Node Labels
const (
	// LabelUser represents an account that can log in
	LabelUser = "User"

	// LabelRole represents a named role referenced by a user's roleID
	LabelRole = "Role"

	// LabelPost represents an article
	LabelPost = "Post"

	LabelComment    = "Comment"
	LabelCategory   = "Category"
	LabelTag        = "Tag"
	LabelSubscriber = "Subscriber"
)

// model/neo4j/relationships.go
package quill_neo4j

// Relationship Types
const (
	// RelWrittenBy links a post to its author
	RelWrittenBy = "WRITTEN_BY"

	// RelInCategory links a post to at most one category
	RelInCategory = "IN_CATEGORY"

	RelTaggedWith = "TAGGED_WITH"

	// RelOnPost links a comment to the post it was left on
	RelOnPost = "ON_POST"

	RelAuthoredBy = "AUTHORED_BY"
)

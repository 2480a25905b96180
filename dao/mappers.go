// dao/mappers.go
package dao

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/dev-mohitbeniwal/quill/model"
	attr "github.com/dev-mohitbeniwal/quill/model/neo4j"
	helper_util "github.com/dev-mohitbeniwal/quill/util/helper"
)

func mapNodeToUser(node neo4j.Node) *model.User {
	p := node.Props
	return &model.User{
		ID:           helper_util.StringProp(p, attr.AttrID),
		Email:        helper_util.StringProp(p, attr.AttrEmail),
		FullName:     helper_util.StringProp(p, "fullName"),
		AvatarURL:    helper_util.StringProp(p, "avatarURL"),
		PasswordHash: helper_util.StringProp(p, "passwordHash"),
		IsActive:     helper_util.BoolProp(p, attr.AttrIsActive),
		IsSuperuser:  helper_util.BoolProp(p, attr.AttrIsSuperuser),
		RoleID:       helper_util.StringProp(p, attr.AttrRoleID),
		CreatedAt:    helper_util.ParseTime(helper_util.StringProp(p, attr.AttrCreatedAt)),
		UpdatedAt:    helper_util.ParseTime(helper_util.StringProp(p, attr.AttrUpdatedAt)),
	}
}

func mapNodeToAuthor(node *neo4j.Node) *model.AuthorBrief {
	if node == nil {
		return nil
	}
	p := node.Props
	return &model.AuthorBrief{
		ID:        helper_util.StringProp(p, attr.AttrID),
		FullName:  helper_util.StringProp(p, "fullName"),
		AvatarURL: helper_util.StringProp(p, "avatarURL"),
	}
}

func mapNodeToRole(node neo4j.Node) *model.Role {
	p := node.Props
	return &model.Role{
		ID:          helper_util.StringProp(p, attr.AttrID),
		Name:        helper_util.StringProp(p, attr.AttrName),
		Description: helper_util.StringProp(p, attr.AttrDescription),
		CreatedAt:   helper_util.ParseTime(helper_util.StringProp(p, attr.AttrCreatedAt)),
		UpdatedAt:   helper_util.ParseTime(helper_util.StringProp(p, attr.AttrUpdatedAt)),
	}
}

func mapNodeToPost(node neo4j.Node) *model.Post {
	p := node.Props
	return &model.Post{
		ID:              helper_util.StringProp(p, attr.AttrID),
		Title:           helper_util.StringProp(p, "title"),
		Slug:            helper_util.StringProp(p, attr.AttrSlug),
		Content:         helper_util.StringProp(p, "content"),
		Abstract:        helper_util.StringProp(p, "abstract"),
		Status:          helper_util.StringProp(p, attr.AttrStatus),
		Visibility:      helper_util.StringProp(p, "visibility"),
		ThumbnailURL:    helper_util.StringProp(p, "thumbnailURL"),
		MetaTitle:       helper_util.StringProp(p, "metaTitle"),
		MetaDescription: helper_util.StringProp(p, "metaDescription"),
		CanonicalURL:    helper_util.StringProp(p, "canonicalURL"),
		PDFURL:          helper_util.StringProp(p, "pdfURL"),
		Volume:          helper_util.StringProp(p, "volume"),
		Issue:           helper_util.StringProp(p, "issue"),
		ScheduledAt:     helper_util.ParseNullableTime(p["scheduledAt"]),
		ViewCount:       helper_util.Int64Prop(p, attr.AttrViewCount),
		ReadingTime:     int(helper_util.Int64Prop(p, "readingTime")),
		AuthorID:        helper_util.StringProp(p, "authorID"),
		CategoryID:      helper_util.StringProp(p, "categoryID"),
		CreatedAt:       helper_util.ParseTime(helper_util.StringProp(p, attr.AttrCreatedAt)),
		UpdatedAt:       helper_util.ParseTime(helper_util.StringProp(p, attr.AttrUpdatedAt)),
		DeletedAt:       helper_util.ParseNullableTime(p[attr.AttrDeletedAt]),
	}
}

// postProps is the inverse of mapNodeToPost, excluding id and timestamps.
func postProps(post *model.Post) map[string]any {
	props := map[string]any{
		"title":           post.Title,
		attr.AttrSlug:     post.Slug,
		"content":         post.Content,
		"abstract":        post.Abstract,
		attr.AttrStatus:   post.Status,
		"visibility":      post.Visibility,
		"thumbnailURL":    post.ThumbnailURL,
		"metaTitle":       post.MetaTitle,
		"metaDescription": post.MetaDescription,
		"canonicalURL":    post.CanonicalURL,
		"pdfURL":          post.PDFURL,
		"volume":          post.Volume,
		"issue":           post.Issue,
		"readingTime":     int64(post.ReadingTime),
		"authorID":        post.AuthorID,
		"categoryID":      post.CategoryID,
		"scheduledAt":     nil,
	}
	if post.ScheduledAt != nil {
		props["scheduledAt"] = helper_util.FormatTime(*post.ScheduledAt)
	}
	return props
}

func mapNodeToCategory(node *neo4j.Node) *model.Category {
	if node == nil {
		return nil
	}
	p := node.Props
	return &model.Category{
		ID:          helper_util.StringProp(p, attr.AttrID),
		Name:        helper_util.StringProp(p, attr.AttrName),
		Slug:        helper_util.StringProp(p, attr.AttrSlug),
		Description: helper_util.StringProp(p, attr.AttrDescription),
		CreatedAt:   helper_util.ParseTime(helper_util.StringProp(p, attr.AttrCreatedAt)),
	}
}

func mapNodeToTag(node neo4j.Node) model.Tag {
	p := node.Props
	return model.Tag{
		ID:        helper_util.StringProp(p, attr.AttrID),
		Name:      helper_util.StringProp(p, attr.AttrName),
		Slug:      helper_util.StringProp(p, attr.AttrSlug),
		CreatedAt: helper_util.ParseTime(helper_util.StringProp(p, attr.AttrCreatedAt)),
		UpdatedAt: helper_util.ParseTime(helper_util.StringProp(p, attr.AttrUpdatedAt)),
	}
}

func mapNodeToComment(node neo4j.Node) *model.Comment {
	p := node.Props
	return &model.Comment{
		ID:         helper_util.StringProp(p, attr.AttrID),
		Content:    helper_util.StringProp(p, "content"),
		IsApproved: helper_util.BoolProp(p, attr.AttrIsApproved),
		PostID:     helper_util.StringProp(p, "postID"),
		UserID:     helper_util.StringProp(p, "userID"),
		CreatedAt:  helper_util.ParseTime(helper_util.StringProp(p, attr.AttrCreatedAt)),
		UpdatedAt:  helper_util.ParseTime(helper_util.StringProp(p, attr.AttrUpdatedAt)),
	}
}

func mapNodeToSubscriber(node neo4j.Node) *model.Subscriber {
	p := node.Props
	return &model.Subscriber{
		ID:        helper_util.StringProp(p, attr.AttrID),
		Email:     helper_util.StringProp(p, attr.AttrEmail),
		IsActive:  helper_util.BoolProp(p, attr.AttrIsActive),
		CreatedAt: helper_util.ParseTime(helper_util.StringProp(p, attr.AttrCreatedAt)),
	}
}

package engine

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	pdp_model "github.com/dev-mohitbeniwal/quill/pdp/model"
)

// RoleLookup resolves a role id. It returns quill_errors.ErrRoleNotFound
// when the id does not exist.
type RoleLookup interface {
	GetRoleByID(ctx context.Context, roleID string) (*model.Role, error)
}

// RoleGuard admits superusers and users whose role name is in a fixed set.
// It holds no mutable state and is safe to share.
type RoleGuard struct {
	lookup  RoleLookup
	allowed map[string]struct{}
	name    string
}

func NewRoleGuard(lookup RoleLookup, allowed ...string) *RoleGuard {
	set := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		set[name] = struct{}{}
	}
	names := append([]string(nil), allowed...)
	sort.Strings(names)
	return &RoleGuard{lookup: lookup, allowed: set, name: strings.Join(names, ",")}
}

// Check never modifies the user. A nil user is Unauthenticated.
func (g *RoleGuard) Check(ctx context.Context, user *model.User) pdp_model.Decision {
	if user == nil {
		return pdp_model.Decision{Outcome: pdp_model.Unauthenticated, Reason: "no authenticated user"}
	}
	if user.IsSuperuser {
		return pdp_model.Allowed(user, "superuser")
	}
	if user.RoleID == "" {
		return g.deny(user, "user has no role")
	}

	role, err := g.lookup.GetRoleByID(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, quill_errors.ErrRoleNotFound) {
			return g.deny(user, "role does not exist")
		}
		logger.Error("Role lookup failed",
			zap.Error(err),
			zap.String("userID", user.ID),
			zap.String("roleID", user.RoleID))
		return pdp_model.Failed(err)
	}
	if role == nil {
		return g.deny(user, "role does not exist")
	}
	if _, ok := g.allowed[role.Name]; !ok {
		return g.deny(user, "role "+role.Name+" not permitted")
	}
	return pdp_model.Allowed(user, "role "+role.Name)
}

func (g *RoleGuard) deny(user *model.User, reason string) pdp_model.Decision {
	logger.Warn("Role guard denied request",
		zap.String("userID", user.ID),
		zap.String("allowed", g.name),
		zap.String("reason", reason))
	return pdp_model.Denied(reason)
}

// Package authz holds the decision functions gating every mutation.
// All checks fail closed: a nil or anonymous actor is always denied, and
// role rules are exactly the fixed three-level hierarchy - admin satisfies
// owner and editor checks, editor and viewer grant nothing beyond themselves.
package authz

import "mozi/proj/internal/domain/models"

// RoleOf projects an actor to its effective role. Kept as a separate step
// so role logic (e.g. expiring elevated roles) can change without touching
// the decision functions below.
func RoleOf(actor *models.User) models.Role {
	if actor == nil || actor.IsAnonymous() {
		return models.RoleViewer
	}
	return actor.Role
}

func requireAuthenticated(actor *models.User) error {
	if actor == nil || actor.IsAnonymous() {
		return ErrUnauthenticated
	}
	return nil
}

// CanCreateReview allows any authenticated user. The caller must set the
// review's user_id to the actor's id, never to a client-supplied value.
func CanCreateReview(actor *models.User) error {
	return requireAuthenticated(actor)
}

// CanManageReview allows the review's owner and admins to update or
// delete it. Ownership is the actor resolved from the presented token,
// so a valid token for a different account never passes.
func CanManageReview(actor *models.User, review *models.Review) error {
	if err := requireAuthenticated(actor); err != nil {
		return err
	}
	if actor.ID == review.UserID || RoleOf(actor) == models.RoleAdmin {
		return nil
	}
	return ErrUnauthorized
}

// CanManageCatalog allows editors and admins to mutate movies and categories.
func CanManageCatalog(actor *models.User) error {
	if err := requireAuthenticated(actor); err != nil {
		return err
	}
	switch RoleOf(actor) {
	case models.RoleEditor, models.RoleAdmin:
		return nil
	}
	return ErrUnauthorized
}

// CanUpdateUser allows a user to update their own profile fields and an
// admin to update anyone. Changing the role field is admin-only even on
// the actor's own account.
func CanUpdateUser(actor, target *models.User, changesRole bool) error {
	if err := requireAuthenticated(actor); err != nil {
		return err
	}
	if RoleOf(actor) == models.RoleAdmin {
		return nil
	}
	if actor.ID == target.ID && !changesRole {
		return nil
	}
	return ErrUnauthorized
}

// CanDeleteUser allows self-deletion and admins deleting anyone.
func CanDeleteUser(actor, target *models.User) error {
	if err := requireAuthenticated(actor); err != nil {
		return err
	}
	if actor.ID == target.ID || RoleOf(actor) == models.RoleAdmin {
		return nil
	}
	return ErrUnauthorized
}

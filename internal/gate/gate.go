// Package gate decides whether an identity may enter a view. It is a
// pure lookup over a permission table, re-evaluated on every
// navigation, so role changes take effect on the next request.
package gate

import "credema/pkg/domain"

// viewRoles lists the roles admitted to each restricted view. Views
// absent from the table are open to everyone.
var viewRoles = map[domain.View][]domain.Role{
	domain.ViewAdmin:         {domain.RoleAdmin},
	domain.ViewFounderPortal: {domain.RoleFounder, domain.RoleAdmin},
}

// Allow resolves a navigation request: the requested view when the
// account's role admits it, otherwise the public landing view. Views
// outside the closed set also resolve to landing.
func Allow(view domain.View, account domain.Account) domain.View {
	if !view.Valid() {
		return domain.ViewLanding
	}
	roles, restricted := viewRoles[view]
	if !restricted {
		return view
	}
	for _, role := range roles {
		if account.Role == role {
			return view
		}
	}
	return domain.ViewLanding
}

// Admits reports whether the account's role clears the view's
// restriction. Open views admit everyone.
func Admits(view domain.View, account domain.Account) bool {
	return Allow(view, account) == view && view.Valid()
}

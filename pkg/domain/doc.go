// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (users, places,
// amenities and reviews) and are intentionally free of infrastructure concerns
// so they can be shared across packages.
//
// Constructors validate every field and fail with a serrors.ErrValidation
// error naming the offending field. Cross-entity rules (uniqueness,
// referential integrity, authorization) do not live here; they belong to the
// facade.
package domain

// Package domain contains the core domain entities and types used by the
// application. These types represent the SGLGB assessment concepts (users,
// governance areas, indicators, assessments and their evidence) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain

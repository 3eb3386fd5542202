// Package i18n selects the translator for an admin request.
//
// Rendering uses a snapshot of the active locale taken once per request, or
// the locale named by the lang query parameter when previewing. Only the
// language switch form changes the active locale.
package i18n

// Package i18n resolves dotted translation keys against the locale
// dictionaries loaded at startup.
//
// The active locale is a single process-wide cell: one writer (SetLocale),
// any number of readers, and subscribers that observe every change.
package i18n

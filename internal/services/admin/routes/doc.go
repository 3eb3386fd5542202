// Package routes binds admin URL paths to page units.
//
// The table is fixed at construction. Each entry holds a PageRef that is
// either eager or deferred; deferred units are loaded on first visit, once
// per process, and shared by concurrent visitors. Navigate combines path
// matching, unit resolution and the scroll-restoration policy.
package routes

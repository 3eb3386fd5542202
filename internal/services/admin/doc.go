// Package admin serves the fleetdesk administration console.
//
// Pages are resolved through the route table in package routes and rendered
// inside the localized layout. The active locale is process-wide: POST
// /locale is its only writer and GET /locale/events streams its changes.
package admin

// Package v1 contains the gin handlers, DTOs and route registration for
// version 1 of the secure message service REST API.
package v1

// BasePath is the URL prefix shared by all version 1 routes.
const BasePath = "/api/v1/sms"

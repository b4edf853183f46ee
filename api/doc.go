// Package api provides the HTTP API layer for the PulseFeed application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request Validation
//
// Request DTOs carry validation tags that Huma enforces before a handler
// runs, so handlers only see structurally valid input.
//
// 3. Operational Middleware
//
// Request logging, Prometheus metrics and per-client rate limiting are
// applied at the router level and configured through APIConfig.
package api

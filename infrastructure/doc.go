// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and preference storage.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation backed by go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-based cache, durable across restarts
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger backed by logrus
// - logger/standard: Simple structured logger implementation
// - storage/cachestore: Preference persistence over any cache backend
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
package infrastructure

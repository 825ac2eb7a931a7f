// package catalog implements the read-only TMDB API client.
//
// The client wraps the list endpoints (popular, now playing, upcoming, top
// rated), free-text search, and single-movie detail enriched with credits
// and videos. It performs no retries: any transport or status failure is
// surfaced as a single error wrapping [shared.ErrCatalog], and the caller
// decides what to do with it.
package catalog

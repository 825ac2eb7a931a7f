// package models defines the data model for the movie discovery client.
//
// User is the locally registered identity (email/password or federated).
// Movie and its nested types mirror the TMDB wire format; they are consumed
// read-only and never written back to the catalog.
package models

// package store implements the per-profile record store.
//
// A profile holds three independent JSON records: the user registry, the
// current session, and the favorite movie ids. Each record lives under its
// own key; no operation spans two keys. Reads never fail on missing or
// malformed payloads — they fall back to the record's empty default, which
// is the deliberate recovery policy for a corrupted profile.
package store

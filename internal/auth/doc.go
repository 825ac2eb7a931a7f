// package auth owns the identity lifecycle: the local user registry, the
// single session slot, email registration/login policy, and the federated
// (Google/Facebook/Apple) OAuth flows.
//
// The session is a snapshot of one User record. Its presence is the sole
// gate for session-required commands; the snapshot is trusted as-is on read
// and never re-validated against the registry.
package auth

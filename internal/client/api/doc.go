// Package api is the remote gateway to the Pixelmart backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) listing
//     every remote operation the client performs: auth, profile, favorites,
//     downloads, cart, catalog, vendor, admin and orders.
//  2. A concrete HTTP implementation (see Gateway) that serializes JSON,
//     attaches the bearer token to every call except the auth endpoints,
//     performs multipart uploads, and normalizes non-2xx responses into a
//     single *Error shape.
//  3. A normalization layer that maps the backend's heterogeneous payload
//     shapes into the canonical models types exactly once, at this boundary.
//
// # Error Handling
//
// Every failed call returns a *Error carrying the HTTP status and a
// human-readable message. Callers distinguish error kinds by status
// inspection (IsUnauthorized, IsNotFound) or errors.Is against the
// sentinels in internal/common; there is no exception subclassing across
// component boundaries.
//
// # Concurrency & Contexts
//
// Gateway is safe for concurrent use. All operations accept context.Context
// and honor cancellation; the gateway itself enforces no timeout beyond the
// injected http.Client's, and never retries.
package api

// Package cli provides the interactive Pixelmart command-line client.
//
// It wires configuration, local storage, the REST gateway and the
// application services into an interactive REPL. The session persisted in
// the local database is restored and verified on startup, so a returning
// user stays logged in across runs.
//
// Key features:
//   - Register / Login / Logout (anonymous browsing works too)
//   - Browse and search the catalog, view single products
//   - Cart: add, remove, clear, checkout (works offline when anonymous)
//   - Favorites and downloads collections
//   - Vendor surface: own products, uploads, incoming orders
//   - Admin surface: dashboard, vendor and user moderation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

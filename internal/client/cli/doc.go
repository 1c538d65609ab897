// Package cli provides the legacykeeper command-line client.
//
// It wires configuration, the local vault database, the asset store, the
// heartbeat scheduler and an interactive REPL. Running the binary without a
// subcommand opens the REPL; the assets and heartbeat subcommands run a
// single action and exit.
//
// Key features:
//   - Login / Logout of the local session
//   - List / Show / Add / Edit / Delete assets
//   - Scan an image and prefill a new asset from recognised text
//   - Heartbeat check-ins: status, on/off, frequency, confirm
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, NewRootCmd and runREPL for details.
package cli

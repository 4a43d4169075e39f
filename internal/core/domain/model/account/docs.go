// Package account contains the User aggregate, the two roles the system
// knows about, and the Actor value object that identifies the caller of
// every lifecycle operation.
//
// The core never reaches into ambient request or session state. The
// transport layer resolves an opaque session token to an Actor {id, role}
// and threads it into the application layer explicitly.
package account

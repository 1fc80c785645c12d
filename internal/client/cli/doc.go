// Package cli provides the storefront command-line client.
//
// The client runs either one command per invocation
//
//	client -token $STOREFRONT_TOKEN add 12
//
// or, with no command, an interactive REPL that keeps the session token
// obtained by signup or login between commands.
//
// Commands:
//   - signup, login, logout
//   - cart, add <item>, remove <item>
//   - products [all|new|women]
//   - upload <file> (stores a product image, prints its public URL)
//   - ping
//
// Passwords are read from the terminal without echo.
package cli

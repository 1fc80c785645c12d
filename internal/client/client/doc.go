// Package client contains the client-side transport for the storefront.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering
//     account creation and login, cart reads and changes, catalog listings
//     and a liveness probe.
//  2. A gRPC implementation (see GRPCClient) that speaks the JSON codec of
//     package api, injects the session token through an interceptor and maps
//     gRPC status codes back onto the sentinel errors of package common.
//
// # Error Handling
//
// Server-side rejections come back as the matching common sentinel
// (common.ErrWrongPassword, common.ErrNothingToRemove, ...), so callers can
// use errors.Is. Transport problems surface as ErrUnavailable; an
// authentication failure the server did not classify surfaces as
// ErrUnauthorized.
//
// Concurrency & Contexts
//
// A GRPCClient may be shared between goroutines. All operations accept a
// context.Context and honor cancellation and deadlines.
package client

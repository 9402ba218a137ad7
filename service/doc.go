// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service implements the dashboard operations that sit between the
HTTP handlers, the question store and the realtime registry.

	dash := service.New(store, registry, signer, notifier, service.Options{...})
	q, err := dash.SubmitQuestion(ctx, "How do I reset my password?", nil)

# Ordering

Each mutating operation commits to the store first and only then
broadcasts its event, so a viewer that reacts to an event with a GET sees
the new state. Operations on different requests are not ordered; two
concurrent answers on one question are last-write-wins.

# Errors

Expected outcomes are returned wrapped around the errorz sentinels:

  - ErrValidation: empty question, bad registration input, unknown status filter
  - ErrNotFound: unknown question id
  - ErrForbidden: answer without an admin token
  - ErrConflict: escalating twice, duplicate username or email
  - ErrUnauthorized: bad login

Anything else is wrapped with ErrInternal.

# Authorization

ResolveUser turns a bearer token into a user. Every failure (bad
signature, expiry, deleted user) resolves to nil, so protected operations
fail with ErrForbidden rather than an internal error. Escalation requires
no user at all.
*/
package service

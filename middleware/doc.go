// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Logging

WithLogging wraps handlers with start/completion logs including duration:

	mux.HandleFunc("GET /songs", middleware.WithLogging(handler.List))

# Identity

Identity resolves "Authorization: Bearer <token>" headers once per request.
The signed token is decoded at this boundary only; handlers read the typed
user from the context:

	identity := middleware.NewIdentity(db, cfg, clock)
	mux.HandleFunc("POST /songs", identity.RequireUser(handler.Add))

	// inside a handler
	user := middleware.UserFrom(r)

WithUser resolves identity without rejecting (for public endpoints that
personalize when signed in); RequireUser answers 401 when no valid,
unexpired session is presented.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
	middleware.ParseJSONBody(r, &req)

# CORS

CORS allows cross-origin requests from the frontend and answers preflight
OPTIONS requests.
*/
package middleware

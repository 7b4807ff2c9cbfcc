// Package common contains shared constants and sentinel errors used across
// RecipeBox components.
package common

// SessionCookieName is the cookie that carries the signed session token
// between the browser (or CLI cookie jar) and the server.
const SessionCookieName = "recipebox_session"

// BearerPrefix prefixes the session token in the Authorization header used
// by non-browser clients.
const BearerPrefix = "Bearer "

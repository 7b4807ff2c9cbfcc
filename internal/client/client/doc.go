// Package client is the HTTP client for the RecipeBox API.
//
// RESTClient keeps the session cookie in a cookie jar, so after Register or
// Login every call is authenticated. Failures are reported as sentinel
// errors that callers match with errors.Is:
//
//   - ErrUnavailable: the server could not be reached.
//   - ErrUnauthorized: 401, no session or bad credentials.
//   - ErrNotFound: 404, missing or not owned.
//
// Anything else is an *APIError carrying the server's code, message and
// field violations. APIError also matches ErrUnauthorized and ErrNotFound
// for those statuses, so the server's message is never lost.
package client

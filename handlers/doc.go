// Package handlers provides HTTP request handlers for the k8s-hello service.
//
// Overview
//
// Handlers are organized by functionality:
//   - root.go: greeting endpoint
//   - health.go: liveness/readiness endpoint
//   - errors.go: JSON bodies for unmatched routes and wrong methods
//   - types.go: response bodies and the User record
//
// Every handler is stateless and returns a fixed JSON body, so handlers are
// safe to call concurrently and repeated requests yield identical responses.
//
// Error Handling
//
// There are no business errors. Routing failures answer with a JSON body of
// the form {"detail": "..."}:
//   - 404: Not Found (no route for the path)
//   - 405: Method Not Allowed (path exists, method does not)
//   - 500: Internal Server Error (recovered handler panic)
package handlers

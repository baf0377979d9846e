// Package httpapi exposes the bakery services over HTTP.
//
// Request bodies are form-encoded or multipart; responses are JSON.
// Errors are reported as {"error": code, "message": text} with a status
// derived from the domain error that caused them.
package httpapi

package api

import "mimcstark/stark"

// verifyRequest is the JSON request body for POST /api/v1/verify: the Proof
// object as spec.md §6 describes it, all FieldValues as canonical decimal
// strings.
type verifyRequest = stark.Proof

// verifyResponse is the JSON response body for POST /api/v1/verify.
//
//	on success: {"success": true, "message": <human string>}
//	on failure: {"success": false, "error": <human string>}
type verifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

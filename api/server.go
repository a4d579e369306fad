// Package api provides the HTTP verify endpoint that spec.md §6 describes
// as an external collaborator wrapping the pure stark.Verify function. It
// never implements cryptographic logic itself.
package api

import "github.com/gin-gonic/gin"

// NewEngine constructs a gin.Engine with the verify API installed, mirroring
// the teacher's cmd/api bootstrap convention of building one *gin.Engine and
// installing each domain package's routes onto it.
func NewEngine() *gin.Engine {
	r := gin.Default()
	InstallAPI(r)
	return r
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	uuid "github.com/kthomas/go.uuid"
	"mimcstark/common"
	"mimcstark/stark"
)

// InstallAPI registers the verify endpoint with gin, in the style of the
// teacher's circuit.InstallAPI / store.InstallAPI route registration.
func InstallAPI(r *gin.Engine) {
	r.GET("/healthz", healthzHandler)
	r.POST("/api/v1/verify", verifyHandler)
}

func healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// verifyHandler exposes the core's pure stark.Verify as an HTTP endpoint
// (spec.md §6): JSON Proof in, JSON {success, message|error} out. The HTTP
// layer is an external collaborator to the core — it only marshals the
// request, calls the pure function, and renders the result.
func verifyHandler(c *gin.Context) {
	requestID, _ := uuid.NewV4()
	log := common.Log

	buf, err := c.GetRawData()
	if err != nil {
		log.Warningf("request %s: failed to read verify request body; %s", requestID, err.Error())
		c.JSON(http.StatusBadRequest, verifyResponse{Success: false, Error: "failed to read request body"})
		return
	}

	var proof verifyRequest
	if err := json.Unmarshal(buf, &proof); err != nil {
		log.Warningf("request %s: failed to parse proof; %s", requestID, err.Error())
		c.JSON(http.StatusUnprocessableEntity, verifyResponse{Success: false, Error: "failed to parse proof: " + err.Error()})
		return
	}

	if err := stark.Verify(&proof); err != nil {
		log.Debugf("request %s: proof rejected; %s", requestID, err.Error())
		c.JSON(http.StatusOK, verifyResponse{Success: false, Error: err.Error()})
		return
	}

	log.Debugf("request %s: proof accepted", requestID)
	c.JSON(http.StatusOK, verifyResponse{Success: true, Message: "proof verified"})
}

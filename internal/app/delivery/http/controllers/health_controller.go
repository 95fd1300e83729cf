package controllers

import (
	"net/http"

	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/utils"
)

// Ping is the liveness probe, also hit by the keep-alive worker.
func Ping(w http.ResponseWriter, r *http.Request) {
	utils.BuildTextResponse(w, constvars.StatusOK, constvars.PingResponseMessage)
}

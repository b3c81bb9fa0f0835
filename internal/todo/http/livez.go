package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	todosdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, todosdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

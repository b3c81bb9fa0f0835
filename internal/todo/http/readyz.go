package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Pings the database and checks the token signer.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	todosdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	todosdk.HealthResponse	"degraded"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	signer jwtx.Signer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &todosdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := signer.Validate(); err != nil {
			checks.Signer = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, todosdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

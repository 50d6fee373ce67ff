package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and the state of the database, session signer, federated login and mail delivery
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	shopsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	shopsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	guard *service.AccessGuard,
	mailMode string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &shopsdk.HealthChecks{
			Database:  "ok",
			Signer:    "ok",
			Federated: "disabled",
			Mail:      mailMode,
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Sessions cannot be minted without a secret
		if guard == nil || guard.Sessions == nil || len(guard.Sessions.Secret) == 0 {
			checks.Signer = "error: no signing secret"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if guard != nil && guard.Credentials != nil && guard.Credentials.FederatedIssuer() != "" {
			checks.Federated = "ok"
		}

		httpx.WriteJSON(w, statusCode, shopsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

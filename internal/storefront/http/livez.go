package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Check Endpoint
//	@Description	Liveness probe returning uptime and build version. Never touches dependencies.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	shopsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, shopsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

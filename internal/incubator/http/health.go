package http

import (
	"net/http"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
	"github.com/PadsterH2012/Idea-Incubator/pkg/slogx"
)

// LivezHandler reports process liveness. It never touches the database.
//
//	@Summary	Liveness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/livez [get].
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.NoCache(w)
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	})
}

// ReadyzHandler reports readiness to serve traffic, including a database ping.
//
//	@Summary	Readiness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.NoCache(w)

		resp := HealthResponse{
			Status:   "ok",
			Uptime:   time.Since(startTime).Round(time.Second).String(),
			Version:  version,
			Database: "ok",
		}

		status := http.StatusOK
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readyz database ping failed", "err", err)
			resp.Status = "degraded"
			resp.Database = "unreachable"
			status = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, status, resp)
	})
}

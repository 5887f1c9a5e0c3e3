package server

import (
	"crypto/subtle"
	"net/http"
)

// collectTokenHeader carries the shared secret for the trigger endpoint.
const collectTokenHeader = "X-Collect-Token"

// handleCollect runs one collection pass. The endpoint is meant for the
// cron-style external trigger and admin tooling; it requires the shared
// collect token, not a session.
func (s *Server) handleCollect(w http.ResponseWriter, r *http.Request) {
	if s.collectToken == "" {
		http.Error(w, "collection trigger not configured", http.StatusForbidden)
		return
	}
	got := r.Header.Get(collectTokenHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(s.collectToken)) != 1 {
		s.log.Warn("collect trigger rejected", "remote", r.RemoteAddr)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := s.runner.Run(r.Context())
	if err != nil {
		// Storage failures abort the run; surface them to the caller.
		s.log.Error("collection run failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"total_repos":     res.TotalRepos,
		"processed_repos": res.ProcessedRepos,
	})
}

package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type addRepoRequest struct {
	OrgName  string `json:"orgname"`
	RepoName string `json:"reponame"`
}

func (s *Server) handleAddRepo(w http.ResponseWriter, r *http.Request) {
	var req addRepoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.OrgName == "" || req.RepoName == "" {
		http.Error(w, "orgname and reponame are required", http.StatusBadRequest)
		return
	}
	session, _ := sessionFromContext(r.Context())
	repoID, err := s.store.AddRepo(r.Context(), session.Email, req.OrgName, req.RepoName)
	if err != nil {
		s.log.Error("add repo", "org", req.OrgName, "repo", req.RepoName, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("repo added", "rid", repoID, "org", req.OrgName, "repo", req.RepoName, "by", session.Email)
	writeJSON(w, http.StatusCreated, map[string]any{"repoid": repoID})
}

func (s *Server) handleDeleteRepo(w http.ResponseWriter, r *http.Request) {
	repoID, err := strconv.ParseInt(chi.URLParam(r, "rid"), 10, 64)
	if err != nil {
		http.Error(w, "invalid repo id", http.StatusBadRequest)
		return
	}
	if err := s.store.DeleteRepo(r.Context(), repoID); err != nil {
		s.log.Error("delete repo", "rid", repoID, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	session, _ := sessionFromContext(r.Context())
	s.log.Info("repo deleted", "rid", repoID, "by", session.Email)
	writeJSON(w, http.StatusOK, map[string]any{"repoid": repoID})
}

// handleDashboardSession issues a time-limited data token an embedded
// dashboard can use for Basic-auth access to the CSV data endpoints.
func (s *Server) handleDashboardSession(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFromContext(r.Context())
	token, err := s.sessions.IssueDataToken(session.Email)
	if err != nil {
		s.log.Error("issue data token", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"token":      token,
		"expires_in": 3600,
	})
}

package server

import (
	"encoding/csv"
	"net/http"
	"strconv"
)

// runLogWindowDays bounds the system log listing, matching the admin UI.
const runLogWindowDays = 30

func (s *Server) handleRepoStatsCSV(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFromContext(r.Context())
	rows, err := s.store.TrafficStats(r.Context(), session.Email)
	if err != nil {
		s.log.Error("repo stats", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"RID", "ORGNAME", "REPONAME", "TDATE", "VIEWCOUNT", "VUNIQUES", "CLONECOUNT", "CUNIQUES"})
	for _, row := range rows {
		_ = cw.Write([]string{
			strconv.FormatInt(row.RepoID, 10),
			row.OrgName,
			row.RepoName,
			row.Date.Format("2006-01-02"),
			strconv.FormatInt(row.ViewCount, 10),
			strconv.FormatInt(row.VUniques, 10),
			strconv.FormatInt(row.CloneCount, 10),
			strconv.FormatInt(row.CUniques, 10),
		})
	}
	cw.Flush()
}

func (s *Server) handleRepoStatsJSON(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFromContext(r.Context())
	rows, err := s.store.TrafficStats(r.Context(), session.Email)
	if err != nil {
		s.log.Error("repo stats", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	type stat struct {
		RepoID     int64  `json:"rid"`
		OrgName    string `json:"orgname"`
		RepoName   string `json:"reponame"`
		Date       string `json:"tdate"`
		ViewCount  int64  `json:"viewcount"`
		VUniques   int64  `json:"vuniques"`
		CloneCount int64  `json:"clonecount"`
		CUniques   int64  `json:"cuniques"`
	}
	out := make([]stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, stat{
			RepoID:     row.RepoID,
			OrgName:    row.OrgName,
			RepoName:   row.RepoName,
			Date:       row.Date.Format("2006-01-02"),
			ViewCount:  row.ViewCount,
			VUniques:   row.VUniques,
			CloneCount: row.CloneCount,
			CUniques:   row.CUniques,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

func (s *Server) handleWeeklyStatsJSON(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFromContext(r.Context())
	rows, err := s.store.WeeklyTrafficStats(r.Context(), session.Email)
	if err != nil {
		s.log.Error("weekly stats", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	type stat struct {
		RepoID     int64  `json:"rid"`
		OrgName    string `json:"orgname"`
		RepoName   string `json:"reponame"`
		WorkWeek   string `json:"workweek"`
		ViewCount  int64  `json:"viewcount"`
		VUniques   int64  `json:"vuniques"`
		CloneCount int64  `json:"clonecount"`
		CUniques   int64  `json:"cuniques"`
	}
	out := make([]stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, stat{
			RepoID:     row.RepoID,
			OrgName:    row.OrgName,
			RepoName:   row.RepoName,
			WorkWeek:   row.WorkWeek,
			ViewCount:  row.ViewCount,
			VUniques:   row.VUniques,
			CloneCount: row.CloneCount,
			CUniques:   row.CUniques,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

func (s *Server) handleRepoListCSV(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFromContext(r.Context())
	rows, err := s.store.ListReposForEmail(r.Context(), session.Email)
	if err != nil {
		s.log.Error("repo list", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"RID", "ORGNAME", "REPONAME"})
	for _, row := range rows {
		_ = cw.Write([]string{strconv.FormatInt(row.RepoID, 10), row.OrgName, row.RepoName})
	}
	cw.Flush()
}

func (s *Server) handleRepoListJSON(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFromContext(r.Context())
	rows, err := s.store.ListReposForEmail(r.Context(), session.Email)
	if err != nil {
		s.log.Error("repo list", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	type repo struct {
		RepoID   int64  `json:"rid"`
		OrgName  string `json:"orgname"`
		RepoName string `json:"reponame"`
	}
	out := make([]repo, 0, len(rows))
	for _, row := range rows {
		out = append(out, repo{RepoID: row.RepoID, OrgName: row.OrgName, RepoName: row.RepoName})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

func (s *Server) handleSystemLogJSON(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.RecentRunLog(r.Context(), runLogWindowDays)
	if err != nil {
		s.log.Error("system log", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	type entry struct {
		TenantID  int64  `json:"tid"`
		Completed string `json:"completed"`
		NumRepos  int    `json:"numrepos"`
		State     string `json:"state"`
	}
	out := make([]entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entry{
			TenantID:  row.TenantID,
			Completed: row.Completed.UTC().Format("2006-01-02 15:04:05"),
			NumRepos:  row.NumRepos,
			State:     row.State,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

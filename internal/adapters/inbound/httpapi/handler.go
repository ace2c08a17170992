package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smellview/smellview/internal/application"
	"github.com/smellview/smellview/internal/domain"
)

// Handler serves the dashboard API on top of the application services.
type Handler struct {
	svc application.Services
}

func NewHandler(svc application.Services) *Handler {
	return &Handler{svc: svc}
}

type addProjectRequest struct {
	ProjectName string `json:"projectName"`
	ProjectURL  string `json:"projectUrl"`
}

type refactorRequest struct {
	Identifiers []string `json:"identifiers"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// ListProjects returns all registered projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.Projects.ListProjects(r.Context())
	if err != nil {
		SendDomainError(w, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	SendSuccess(w, projects)
}

func (h *Handler) AddProject(w http.ResponseWriter, r *http.Request) {
	var req addProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p, err := h.svc.Projects.AddProject(r.Context(), req.ProjectName, req.ProjectURL)
	if err != nil {
		SendDomainError(w, err)
		return
	}
	SendSuccess(w, p)
}

func (h *Handler) ListCommits(w http.ResponseWriter, r *http.Request) {
	commits, err := h.svc.Projects.Commits(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		SendDomainError(w, err)
		return
	}
	if commits == nil {
		commits = []domain.Commit{}
	}
	SendSuccess(w, commits)
}

// BadSmells returns the deduplicated smells of a commit. Optional query
// parameters: rule (comma separated) and path (glob), project (history label).
func (h *Handler) BadSmells(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.SmellFilter{
		RuleIDs:  domain.SplitList(q.Get("rule")),
		PathGlob: q.Get("path"),
	}
	result, err := h.svc.Smells.SmellsForCommit(r.Context(), q.Get("project"), chi.URLParam(r, "hash"), filter)
	if err != nil {
		SendDomainError(w, err)
		return
	}
	SendSuccess(w, result)
}

func (h *Handler) ListRefactorings(w http.ResponseWriter, r *http.Request) {
	refs, err := h.svc.Refactors.AvailableRefactorings(r.Context())
	if err != nil {
		SendDomainError(w, err)
		return
	}
	if refs == nil {
		refs = []domain.Refactoring{}
	}
	SendSuccess(w, refs)
}

func (h *Handler) Refactor(w http.ResponseWriter, r *http.Request) {
	var req refactorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	status, err := h.svc.Refactors.Refactor(r.Context(), req.Identifiers)
	if err != nil {
		SendDomainError(w, err)
		return
	}
	SendSuccess(w, statusResponse{Status: status})
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.Projects.Config(r.Context(), r.URL.Query().Get("projectUrl"))
	if err != nil {
		SendDomainError(w, err)
		return
	}
	SendSuccess(w, cfg)
}

func (h *Handler) PutConfig(w http.ResponseWriter, r *http.Request) {
	var req domain.ProjectConfig
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	saved, err := h.svc.Projects.SaveConfig(r.Context(), req)
	if err != nil {
		SendDomainError(w, err)
		return
	}
	SendSuccess(w, saved)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.svc.Smells.History(chi.URLParam(r, "project"))
	if err != nil {
		SendDomainError(w, err)
		return
	}
	if snaps == nil {
		snaps = []domain.CommitSnapshot{}
	}
	SendSuccess(w, snaps)
}

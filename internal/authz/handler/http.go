// Package handler exposes the authorization service over HTTP. It owns all
// transport concerns: token extraction, scalar-to-list normalization of
// batch parameters, JSON shapes, and the mapping from service errors to
// status codes. The core never sees any of this.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"usip/internal/authz/service"
	userdomain "usip/internal/user/domain"
)

// tokenHeader carries the credential token; a cookie of the same name is
// accepted as a fallback, with the header taking precedence.
const tokenHeader = "x-authorization"

// Server translates HTTP requests into authorization service calls.
type Server struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewServer returns an HTTP handler for the given service. A nil logger is
// replaced with a no-op logger.
func NewServer(svc *service.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{svc: svc, logger: logger}
}

// Routes registers the API endpoints on r. Batch endpoints accept both GET
// with repeated query parameters and POST with a JSON body.
func (s *Server) Routes(r chi.Router) {
	r.Get("/credential", s.handleCredential)
	r.Get("/userinfo", s.handleUserInfo)
	r.Post("/userinfo", s.handleUserInfo)
	r.Get("/role", s.handleRole)
	r.Get("/collaborators", s.handleCollaborators)
	r.Post("/collaborators", s.handleCollaborators)
}

type userPayload struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type subjectPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Type   string `json:"type"`
}

type collaboratorPayload struct {
	Role    string         `json:"role"`
	Subject subjectPayload `json:"subject"`
}

type unitCollaboratorsPayload struct {
	UnitID   string                `json:"unitID"`
	Subjects []collaboratorPayload `json:"subjects"`
}

func userToPayload(u *userdomain.User) userPayload {
	return userPayload{UserID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

func (s *Server) handleCredential(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(tokenHeader)
	if token == "" {
		if c, err := r.Cookie(tokenHeader); err == nil {
			token = c.Value
		}
	}

	user, err := s.svc.Authenticate(r.Context(), token)
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case err != nil:
		s.internalError(w, r, err)
	default:
		writeJSON(w, http.StatusOK, struct {
			User userPayload `json:"user"`
		}{User: userToPayload(user)})
	}
}

func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	userIDs, err := listParam(r, "userIDs")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	users, err := s.svc.GetUsers(r.Context(), userIDs)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	payload := make([]userPayload, 0, len(users))
	for _, u := range users {
		payload = append(payload, userToPayload(u))
	}
	writeJSON(w, http.StatusOK, struct {
		Users []userPayload `json:"users"`
	}{Users: payload})
}

func (s *Server) handleRole(w http.ResponseWriter, r *http.Request) {
	unitID := r.URL.Query().Get("unitID")
	userID := r.URL.Query().Get("userID")

	m, err := s.svc.GetRole(r.Context(), unitID, userID)
	switch {
	case errors.Is(err, service.ErrMembershipNotFound):
		writeError(w, http.StatusNotFound, "Member not found")
	case err != nil:
		s.internalError(w, r, err)
	default:
		writeJSON(w, http.StatusOK, struct {
			UnitID string `json:"unitID"`
			UserID string `json:"userID"`
			Role   string `json:"role"`
		}{UnitID: m.UnitID, UserID: m.UserID, Role: string(m.Role)})
	}
}

func (s *Server) handleCollaborators(w http.ResponseWriter, r *http.Request) {
	unitIDs, err := listParam(r, "unitIDs")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	units, err := s.svc.ListCollaborators(r.Context(), unitIDs)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	payload := make([]unitCollaboratorsPayload, 0, len(units))
	for _, unit := range units {
		up := unitCollaboratorsPayload{
			UnitID:   unit.UnitID,
			Subjects: make([]collaboratorPayload, 0, len(unit.Entries)),
		}
		for _, e := range unit.Entries {
			up.Subjects = append(up.Subjects, collaboratorPayload{
				Role: string(e.Role),
				Subject: subjectPayload{
					ID:     e.User.ID,
					Name:   e.User.Name,
					Avatar: e.User.Avatar,
					Type:   "user",
				},
			})
		}
		payload = append(payload, up)
	}
	writeJSON(w, http.StatusOK, struct {
		Collaborators []unitCollaboratorsPayload `json:"collaborators"`
	}{Collaborators: payload})
}

// listParam returns the values for key from repeated query parameters, or,
// for POST requests, from the JSON body. A scalar JSON string is normalized
// to a one-element list here so the service only ever sees sequences.
func listParam(r *http.Request, key string) ([]string, error) {
	if r.Method == http.MethodPost {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, errors.New("invalid JSON body")
		}
		switch v := body[key].(type) {
		case nil:
			return nil, nil
		case string:
			return []string{v}, nil
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%s must contain only strings", key)
				}
				out = append(out, s)
			}
			return out, nil
		default:
			return nil, fmt.Errorf("%s must be a string or an array of strings", key)
		}
	}
	return r.URL.Query()[key], nil
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: msg})
}

package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/server/models"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/users"
	"github.com/dmitrijs2005/recipebox/internal/server/validation"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = users.NormalizeEmail(req.Email)

	if err := checkRules(map[string]any{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}, validation.RegisterRules); err != nil {
		s.fail(w, r, err)
		return
	}

	user, sess, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", user.ID)
	s.setSessionCookie(w, sess.Token, sess.ExpiresAt)
	ok(w, userResponse{User: user})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	req.Email = users.NormalizeEmail(req.Email)

	if err := checkRules(map[string]any{
		"email":    req.Email,
		"password": req.Password,
	}, validation.LoginRules); err != nil {
		s.fail(w, r, err)
		return
	}

	user, sess, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.setSessionCookie(w, sess.Token, sess.ExpiresAt)
	ok(w, userResponse{User: user})
}

// logout works with or without a live session and always clears the cookie
// unless the store fails.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := s.users.Logout(r.Context(), token); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	s.clearSessionCookie(w)
	message(w, "Logged out")
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())

	user, err := s.users.GetUser(r.Context(), p.UserID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ok(w, userResponse{User: user})
}

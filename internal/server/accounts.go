package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/auth"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	session, err := s.auth.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, model.Response{Success: true, Data: session})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		s.auth.Logout(token)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	respondJSON(w, http.StatusOK, model.Response{Success: true, Message: "Logged out"})
}

// handleOnboard creates another admin account. Only admins may call it.
func (s *Server) handleOnboard(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(r.Context())
	if !ok || session.Role != model.RoleAdmin {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := s.auth.Onboard(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			respondError(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, model.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Failed to onboard admin: "+err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, model.Response{
		Success: true,
		Data: map[string]string{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

package controllers

import (
	"encoding/json"
	"net/http"

	"stocklist/backend/app/apperr"
	"stocklist/backend/app/dto"
	jwtutil "stocklist/backend/app/jwt"
	"stocklist/backend/app/services"
)

type AuthController struct {
	Users  *services.AuthService
	Signer *jwtutil.Signer
	Dev    bool
}

func NewAuthController(users *services.AuthService, signer *jwtutil.Signer, dev bool) *AuthController {
	return &AuthController{Users: users, Signer: signer, Dev: dev}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Write(w, apperr.New(apperr.Validation, "Invalid request body"), c.Dev)
		return
	}
	u, err := c.Users.Register(req)
	if err != nil {
		apperr.Write(w, err, c.Dev)
		return
	}
	token, err := c.Signer.Sign(u.UserID, u.UserName, u.IsAdmin)
	if err != nil {
		apperr.Write(w, apperr.Wrap(apperr.Internal, "Server error", err), c.Dev)
		return
	}
	writeJSON(w, http.StatusCreated, dto.AuthResponse{Token: token, User: dto.PublicUserOf(u)})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Write(w, apperr.New(apperr.Validation, "Invalid request body"), c.Dev)
		return
	}
	u, err := c.Users.Login(req.UserName, req.Password)
	if err != nil {
		apperr.Write(w, err, c.Dev)
		return
	}
	token, err := c.Signer.Sign(u.UserID, u.UserName, u.IsAdmin)
	if err != nil {
		apperr.Write(w, apperr.Wrap(apperr.Internal, "Server error", err), c.Dev)
		return
	}
	writeJSON(w, http.StatusOK, dto.AuthResponse{Token: token, User: dto.PublicUserOf(u)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

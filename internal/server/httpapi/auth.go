package httpapi

import (
	"net/http"
)

type registerRequest struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token      string `json:"token"`
	UserName   string `json:"username"`
	Expiration string `json:"expiration"`
	IsAdmin    bool   `json:"isAdmin"`
}

type changePasswordRequest struct {
	UserName           string `json:"username"`
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

type resetPasswordAdminRequest struct {
	UserName           string `json:"username"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

type resetPasswordTokenRequest struct {
	UserName string `json:"username"`
}

type resetPasswordTokenResponse struct {
	Token string `json:"token"`
}

type resetPasswordRequest struct {
	UserName           string `json:"username"`
	Token              string `json:"token"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.registration.Register(r.Context(), req.UserName, req.Email, req.Password); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "User created successfully!")
}

func (s *Server) handleRegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.registration.RegisterAdmin(r.Context(), req.UserName, req.Email, req.Password); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "User created successfully!")
}

// handleLogin answers a bare 401 for bad credentials so that nothing tells
// unknown users and wrong passwords apart.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := s.authentication.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		if isUnauthenticated(err) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:      session.Token,
		UserName:   session.UserName,
		Expiration: session.Expiration,
		IsAdmin:    session.IsAdmin,
	})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := s.passwords.ChangePassword(r.Context(), req.UserName, req.CurrentPassword, req.NewPassword, req.ConfirmNewPassword)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "Password successfully changed.")
}

func (s *Server) handleResetPasswordAdmin(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := s.passwords.AdminResetPassword(r.Context(), req.UserName, req.NewPassword, req.ConfirmNewPassword)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "Password successfully reset.")
}

func (s *Server) handleResetPasswordToken(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	token, err := s.passwords.IssueResetToken(r.Context(), req.UserName)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resetPasswordTokenResponse{Token: token})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := s.passwords.ResetPassword(r.Context(), req.UserName, req.Token, req.NewPassword, req.ConfirmNewPassword)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, "Password successfully reset.")
}

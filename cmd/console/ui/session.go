package ui

import (
	"encoding/json"
	"os"
	"path/filepath"

	"stocklist/backend/app/dto"
	jwtutil "stocklist/backend/app/jwt"
)

// Session owns the client-side auth state: the bearer token and the public
// user, mirrored to a JSON file so a restarted console resumes where the
// user left off. The role is computed once from isAdmin when the session is
// established; every view consumes the value.
type Session struct {
	Token string          `json:"token"`
	User  *dto.PublicUser `json:"user"`

	role jwtutil.Role
	path string
}

func DefaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "stocklist", "session.json")
}

// LoadSession reads a persisted session if one exists; a missing or corrupt
// file just yields an empty (guest) session.
func LoadSession(path string) *Session {
	s := &Session{path: path, role: jwtutil.RoleGuest}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, s); err != nil {
		return &Session{path: path, role: jwtutil.RoleGuest}
	}
	if s.Token != "" && s.User != nil {
		s.role = jwtutil.RoleOf(s.User.IsAdmin)
	}
	return s
}

func (s *Session) LoggedIn() bool { return s.Token != "" && s.User != nil }

func (s *Session) Role() jwtutil.Role { return s.role }

func (s *Session) CurrentUser() *dto.PublicUser { return s.User }

// Login authenticates against the backend and persists the session.
func (s *Session) Login(api *Client, userName, password string) error {
	resp, err := api.Login(userName, password)
	if err != nil {
		return err
	}
	return s.establish(resp)
}

// Register creates an account and persists the resulting session.
func (s *Session) Register(api *Client, req dto.RegisterRequest) error {
	resp, err := api.Register(req)
	if err != nil {
		return err
	}
	return s.establish(resp)
}

// Logout clears the in-memory state and removes the persisted file.
func (s *Session) Logout() {
	s.Token = ""
	s.User = nil
	s.role = jwtutil.RoleGuest
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}

func (s *Session) establish(resp *dto.AuthResponse) error {
	s.Token = resp.Token
	user := resp.User
	s.User = &user
	s.role = jwtutil.RoleOf(user.IsAdmin)
	return s.save()
}

func (s *Session) save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

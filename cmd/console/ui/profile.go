package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type ProfileModel struct {
	Session *Session
}

func NewProfileModel(s *Session) ProfileModel {
	return ProfileModel{Session: s}
}

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backToProductsMsg{} }
		case "l":
			m.Session.Logout()
			return m, func() tea.Msg { return loggedOutMsg{} }
		}
	}
	return m, nil
}

func (m ProfileModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("stocklist - Profile") + "\n\n")
	u := m.Session.CurrentUser()
	if u == nil {
		b.WriteString("Not logged in\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("User ID:   %d\n", u.UserID))
	b.WriteString(fmt.Sprintf("User name: %s\n", u.UserName))
	b.WriteString(fmt.Sprintf("Name:      %s %s\n", u.FirstName, u.LastName))
	b.WriteString(fmt.Sprintf("Email:     %s\n", u.Email))
	b.WriteString(fmt.Sprintf("Role:      %s\n", m.Session.Role()))
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Esc to go back, l to log out"))
	return b.String()
}

package ui

import (
	"strings"

	"stocklist/backend/app/dto"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type RegisterModel struct {
	Session  *Session
	API      *Client
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

const (
	regUserName = iota
	regFirstName
	regLastName
	regEmail
	regBirthDate
	regPassword
)

func NewRegisterModel(s *Session, api *Client) RegisterModel {
	prompts := []struct{ prompt, placeholder string }{
		{"User name:  ", "user name"},
		{"First name: ", "first name"},
		{"Last name:  ", "last name"},
		{"Email:      ", "email"},
		{"Birth date: ", "1990-01-01"},
		{"Password:   ", "password"},
	}
	inputs := make([]textinput.Model, len(prompts))
	for i, p := range prompts {
		inputs[i] = textinput.New()
		inputs[i].Prompt = p.prompt
		inputs[i].Placeholder = p.placeholder
	}
	inputs[regPassword].EchoMode = textinput.EchoPassword
	inputs[0].Focus()
	inputs[0].PromptStyle = focusedStyle
	return RegisterModel{Session: s, API: api, Inputs: inputs}
}

func (m RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return showLoginMsg{} }
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submitCmd()
			}
			m.focus(m.FocusIdx + 1)
		case tea.KeyTab, tea.KeyDown:
			m.focus(m.FocusIdx + 1)
		case tea.KeyShiftTab, tea.KeyUp:
			m.focus(m.FocusIdx - 1)
		}
	case errMsg:
		m.Err = msg.err
		return m, nil
	}

	cmds := make([]tea.Cmd, len(m.Inputs))
	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *RegisterModel) focus(idx int) {
	if idx >= len(m.Inputs) {
		idx = 0
	}
	if idx < 0 {
		idx = len(m.Inputs) - 1
	}
	focusInput(m.Inputs, m.FocusIdx, idx)
	m.FocusIdx = idx
}

func (m RegisterModel) submitCmd() tea.Cmd {
	req := dto.RegisterRequest{
		UserName:  m.Inputs[regUserName].Value(),
		FirstName: m.Inputs[regFirstName].Value(),
		LastName:  m.Inputs[regLastName].Value(),
		Email:     m.Inputs[regEmail].Value(),
		BirthDate: m.Inputs[regBirthDate].Value(),
		Password:  m.Inputs[regPassword].Value(),
	}
	return func() tea.Msg {
		if err := m.Session.Register(m.API, req); err != nil {
			return apiMsg(err)
		}
		return authOKMsg{}
	}
}

func (m RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("stocklist - Register") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Enter to submit, Esc for login"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorStyle(m.Err.Error()))
	}
	return b.String()
}

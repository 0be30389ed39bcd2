package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type LoginModel struct {
	Session  *Session
	API      *Client
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
	Note     string
}

const (
	loginUserName = iota
	loginPassword
)

func NewLoginModel(s *Session, api *Client) LoginModel {
	inputs := make([]textinput.Model, 2)

	inputs[loginUserName] = textinput.New()
	inputs[loginUserName].Placeholder = "user name"
	inputs[loginUserName].Prompt = "User name: "
	inputs[loginUserName].Focus()
	inputs[loginUserName].PromptStyle = focusedStyle

	inputs[loginPassword] = textinput.New()
	inputs[loginPassword].Placeholder = "password"
	inputs[loginPassword].Prompt = "Password:  "
	inputs[loginPassword].EchoMode = textinput.EchoPassword

	return LoginModel{Session: s, API: api, Inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submitCmd()
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		case tea.KeyCtrlR:
			return m, func() tea.Msg { return showRegisterMsg{} }
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

func (m *LoginModel) nextInput() {
	next := (m.FocusIdx + 1) % len(m.Inputs)
	focusInput(m.Inputs, m.FocusIdx, next)
	m.FocusIdx = next
}

func (m *LoginModel) prevInput() {
	prev := m.FocusIdx - 1
	if prev < 0 {
		prev = len(m.Inputs) - 1
	}
	focusInput(m.Inputs, m.FocusIdx, prev)
	m.FocusIdx = prev
}

func (m LoginModel) submitCmd() tea.Cmd {
	userName := m.Inputs[loginUserName].Value()
	password := m.Inputs[loginPassword].Value()
	return func() tea.Msg {
		if err := m.Session.Login(m.API, userName, password); err != nil {
			return apiMsg(err)
		}
		return authOKMsg{}
	}
}

func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("stocklist - Login") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Enter to submit, Ctrl+R to register, Ctrl+C to quit"))
	if m.Note != "" {
		b.WriteString("\n\n" + statusStyle(m.Note))
	}
	if m.Err != nil {
		b.WriteString("\n\n" + errorStyle(m.Err.Error()))
	}
	return b.String()
}

package ui

import (
	"errors"

	"stocklist/backend/app/models"

	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewProducts
	viewSearch
	viewForm
	viewProfile
)

// messages shared across views
type (
	errMsg             struct{ err error }
	authOKMsg          struct{}
	sessionExpiredMsg  struct{}
	loggedOutMsg       struct{}
	showRegisterMsg    struct{}
	showLoginMsg       struct{}
	productsLoadedMsg  struct{ products []models.Product }
	searchResultsMsg   struct{ products []models.Product }
	productLoadedMsg   struct{ product *models.Product }
	productSavedMsg    struct{}
	productDeletedMsg  struct{}
	openSearchMsg      struct{}
	openProfileMsg     struct{}
	openFormMsg        struct{ productID int } // 0 means add
	backToProductsMsg  struct{}
)

// apiMsg maps a transport error to the right message: an expired session is
// handled globally, everything else surfaces inline in the active view.
func apiMsg(err error) tea.Msg {
	if errors.Is(err, ErrSessionExpired) {
		return sessionExpiredMsg{}
	}
	return errMsg{err}
}

type RootModel struct {
	active  view
	Session *Session
	API     *Client

	Login    LoginModel
	Register RegisterModel
	Products ProductsModel
	Search   SearchModel
	Form     FormModel
	Profile  ProfileModel

	width  int
	height int
}

func NewRootModel(serverURL, sessionPath string) RootModel {
	s := LoadSession(sessionPath)
	api := NewClient(serverURL, s)
	m := RootModel{
		active:   viewLogin,
		Session:  s,
		API:      api,
		Login:    NewLoginModel(s, api),
		Register: NewRegisterModel(s, api),
		Products: NewProductsModel(s, api),
		Search:   NewSearchModel(api),
		Profile:  NewProfileModel(s),
	}
	// load-at-startup: a persisted session skips the login view
	if s.LoggedIn() {
		m.active = viewProducts
	}
	return m
}

func (m RootModel) Init() tea.Cmd {
	if m.active == viewProducts {
		return m.Products.FetchCmd()
	}
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Products.Resize(msg.Width, msg.Height)
		m.Search.Resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case sessionExpiredMsg:
		m.Session.Logout()
		m.Login = NewLoginModel(m.Session, m.API)
		m.Login.Note = "Session expired, please log in again"
		m.active = viewLogin
		return m, m.Login.Init()

	case loggedOutMsg:
		m.Login = NewLoginModel(m.Session, m.API)
		m.active = viewLogin
		return m, m.Login.Init()

	case authOKMsg:
		m.Products = NewProductsModel(m.Session, m.API)
		m.Products.Resize(m.width, m.height)
		m.active = viewProducts
		return m, m.Products.FetchCmd()

	case showRegisterMsg:
		m.Register = NewRegisterModel(m.Session, m.API)
		m.active = viewRegister
		return m, m.Register.Init()

	case showLoginMsg:
		m.Login = NewLoginModel(m.Session, m.API)
		m.active = viewLogin
		return m, m.Login.Init()

	case openSearchMsg:
		m.Search = NewSearchModel(m.API)
		m.Search.Resize(m.width, m.height)
		m.active = viewSearch
		return m, m.Search.Init()

	case openProfileMsg:
		m.Profile = NewProfileModel(m.Session)
		m.active = viewProfile
		return m, nil

	case openFormMsg:
		m.Form = NewFormModel(m.API, msg.productID)
		m.active = viewForm
		return m, m.Form.Init()

	case productSavedMsg, backToProductsMsg:
		m.active = viewProducts
		return m, m.Products.FetchCmd()
	}

	var cmd tea.Cmd
	switch m.active {
	case viewLogin:
		m.Login, cmd = m.Login.Update(msg)
	case viewRegister:
		m.Register, cmd = m.Register.Update(msg)
	case viewProducts:
		m.Products, cmd = m.Products.Update(msg)
	case viewSearch:
		m.Search, cmd = m.Search.Update(msg)
	case viewForm:
		m.Form, cmd = m.Form.Update(msg)
	case viewProfile:
		m.Profile, cmd = m.Profile.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	switch m.active {
	case viewRegister:
		return m.Register.View()
	case viewProducts:
		return m.Products.View()
	case viewSearch:
		return m.Search.View()
	case viewForm:
		return m.Form.View()
	case viewProfile:
		return m.Profile.View()
	default:
		return m.Login.View()
	}
}

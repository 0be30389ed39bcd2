package ui

import (
	"fmt"
	"strconv"
	"strings"

	jwtutil "stocklist/backend/app/jwt"
	"stocklist/backend/app/models"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pageSize matches the browser front end this console replaces: twelve
// products per page, paginated on the client.
const pageSize = 12

type ProductsModel struct {
	Session  *Session
	API      *Client
	Table    table.Model
	Products []models.Product
	Page     int
	Err      error
	Status   string
}

func NewProductsModel(s *Session, api *Client) ProductsModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Description", Width: 44},
		{Title: "Stock", Width: 7},
		{Title: "Active", Width: 7},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(pageSize+2),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return ProductsModel{Session: s, API: api, Table: t}
}

func (m *ProductsModel) Resize(width, height int) {
	if height > 12 {
		m.Table.SetHeight(height - 8)
	}
}

func (m ProductsModel) FetchCmd() tea.Cmd {
	api := m.API
	return func() tea.Msg {
		products, err := api.Products()
		if err != nil {
			return apiMsg(err)
		}
		return productsLoadedMsg{products: products}
	}
}

func (m ProductsModel) Update(msg tea.Msg) (ProductsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		m.Products = msg.products
		m.Err = nil
		if m.Page > m.pageCount()-1 {
			m.Page = 0
		}
		m.setRows()
		return m, nil

	case productDeletedMsg:
		m.Status = "Product deleted"
		return m, m.FetchCmd()

	case errMsg:
		m.Err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.Status = ""
			return m, m.FetchCmd()
		case "right", "n":
			if m.Page < m.pageCount()-1 {
				m.Page++
				m.setRows()
			}
		case "left", "b":
			if m.Page > 0 {
				m.Page--
				m.setRows()
			}
		case "/":
			return m, func() tea.Msg { return openSearchMsg{} }
		case "u":
			return m, func() tea.Msg { return openProfileMsg{} }
		case "a":
			if m.Session.Role() == jwtutil.RoleAdmin {
				return m, func() tea.Msg { return openFormMsg{} }
			}
		case "e":
			if m.Session.Role() == jwtutil.RoleAdmin {
				if id, ok := m.selectedID(); ok {
					return m, func() tea.Msg { return openFormMsg{productID: id} }
				}
			}
		case "d":
			if m.Session.Role() == jwtutil.RoleAdmin {
				if id, ok := m.selectedID(); ok {
					return m, m.deleteCmd(id)
				}
			}
		case "l":
			m.Session.Logout()
			return m, func() tea.Msg { return loggedOutMsg{} }
		case "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m ProductsModel) deleteCmd(productID int) tea.Cmd {
	api := m.API
	return func() tea.Msg {
		if _, err := api.DeleteProduct(productID); err != nil {
			return apiMsg(err)
		}
		return productDeletedMsg{}
	}
}

func (m *ProductsModel) setRows() {
	start := m.Page * pageSize
	end := start + pageSize
	if end > len(m.Products) {
		end = len(m.Products)
	}
	rows := []table.Row{}
	if start < end {
		for _, p := range m.Products[start:end] {
			rows = append(rows, productRow(p))
		}
	}
	m.Table.SetRows(rows)
	m.Table.SetCursor(0)
}

func productRow(p models.Product) table.Row {
	return table.Row{
		strconv.Itoa(p.ProductID),
		p.ProductName,
		p.ProductDescription,
		strconv.Itoa(p.CurrentStockLevel),
		strconv.FormatBool(p.Status),
	}
}

func (m ProductsModel) pageCount() int {
	if len(m.Products) == 0 {
		return 1
	}
	return (len(m.Products) + pageSize - 1) / pageSize
}

func (m ProductsModel) selectedID() (int, bool) {
	row := m.Table.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(row[0])
	return id, err == nil
}

func (m ProductsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("stocklist - Products") + "\n\n")
	b.WriteString(m.Table.View() + "\n")
	b.WriteString(fmt.Sprintf("Page %d/%d (%d products)\n", m.Page+1, m.pageCount(), len(m.Products)))

	hints := "r refresh, / search, u profile, l logout, q quit"
	if m.Session.Role() == jwtutil.RoleAdmin {
		hints = "a add, e edit, d delete, " + hints
	}
	b.WriteString(blurredStyle.Render(hints))

	if m.Status != "" {
		b.WriteString("\n" + statusStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorStyle(m.Err.Error()))
	}
	return b.String()
}

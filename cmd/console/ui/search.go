package ui

import (
	"strings"

	"stocklist/backend/app/models"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type SearchModel struct {
	API      *Client
	Input    textinput.Model
	Table    table.Model
	Results  []models.Product
	Searched bool
	Err      error
}

func NewSearchModel(api *Client) SearchModel {
	input := textinput.New()
	input.Prompt = "Search: "
	input.Placeholder = "name or description"
	input.Focus()

	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Description", Width: 44},
		{Title: "Stock", Width: 7},
		{Title: "Active", Width: 7},
	}
	t := table.New(table.WithColumns(columns), table.WithHeight(14))
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	t.SetStyles(st)

	return SearchModel{API: api, Input: input, Table: t}
}

func (m *SearchModel) Resize(width, height int) {
	if height > 14 {
		m.Table.SetHeight(height - 10)
	}
}

func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultsMsg:
		m.Results = msg.products
		m.Searched = true
		m.Err = nil
		rows := []table.Row{}
		for _, p := range msg.products {
			rows = append(rows, productRow(p))
		}
		m.Table.SetRows(rows)
		return m, nil

	case errMsg:
		m.Err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return backToProductsMsg{} }
		case tea.KeyEnter:
			return m, m.searchCmd()
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m SearchModel) searchCmd() tea.Cmd {
	api := m.API
	query := m.Input.Value()
	return func() tea.Msg {
		products, err := api.SearchProducts(query)
		if err != nil {
			return apiMsg(err)
		}
		return searchResultsMsg{products: products}
	}
}

func (m SearchModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("stocklist - Search") + "\n\n")
	b.WriteString(m.Input.View() + "\n\n")
	if m.Searched {
		if len(m.Results) == 0 {
			b.WriteString(statusStyle("No products matched") + "\n")
		} else {
			b.WriteString(m.Table.View() + "\n")
		}
	}
	b.WriteString(blurredStyle.Render("Enter to search, Esc to go back"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorStyle(m.Err.Error()))
	}
	return b.String()
}

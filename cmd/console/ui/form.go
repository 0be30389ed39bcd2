package ui

import (
	"strconv"
	"strings"

	"stocklist/backend/app/dto"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormModel is the add/edit product form. Add forces status true server-side;
// edit sends every field it shows, prefilled from the record.
type FormModel struct {
	API       *Client
	ProductID int // 0 means add
	Inputs    []textinput.Model
	FocusIdx  int
	Loaded    bool
	Err       error
}

const (
	formName = iota
	formDescription
	formStock
	formStatus
)

func NewFormModel(api *Client, productID int) FormModel {
	prompts := []struct{ prompt, placeholder string }{
		{"Name:        ", "product name"},
		{"Description: ", "product description"},
		{"Stock:       ", "0"},
		{"Active:      ", "true"},
	}
	count := len(prompts)
	if productID == 0 {
		count-- // status is forced true on create
	}
	inputs := make([]textinput.Model, count)
	for i := 0; i < count; i++ {
		inputs[i] = textinput.New()
		inputs[i].Prompt = prompts[i].prompt
		inputs[i].Placeholder = prompts[i].placeholder
	}
	inputs[0].Focus()
	inputs[0].PromptStyle = focusedStyle
	return FormModel{API: api, ProductID: productID, Inputs: inputs, Loaded: productID == 0}
}

func (m FormModel) Init() tea.Cmd {
	if m.ProductID == 0 {
		return textinput.Blink
	}
	api := m.API
	id := m.ProductID
	return tea.Batch(textinput.Blink, func() tea.Msg {
		p, err := api.Product(id)
		if err != nil {
			return apiMsg(err)
		}
		return productLoadedMsg{product: p}
	})
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productLoadedMsg:
		m.Inputs[formName].SetValue(msg.product.ProductName)
		m.Inputs[formDescription].SetValue(msg.product.ProductDescription)
		m.Inputs[formStock].SetValue(strconv.Itoa(msg.product.CurrentStockLevel))
		m.Inputs[formStatus].SetValue(strconv.FormatBool(msg.product.Status))
		m.Loaded = true
		return m, nil

	case errMsg:
		m.Err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return backToProductsMsg{} }
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
	}

	cmds := make([]tea.Cmd, len(m.Inputs))
	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *FormModel) focus(idx int) {
	if idx >= len(m.Inputs) {
		idx = 0
	}
	if idx < 0 {
		idx = len(m.Inputs) - 1
	}
	focusInput(m.Inputs, m.FocusIdx, idx)
	m.FocusIdx = idx
}

func (m FormModel) submitCmd() tea.Cmd {
	api := m.API
	name := m.Inputs[formName].Value()
	description := m.Inputs[formDescription].Value()
	stock, err := strconv.Atoi(m.Inputs[formStock].Value())
	if err != nil {
		return func() tea.Msg { return errMsg{err: err} }
	}

	if m.ProductID == 0 {
		req := dto.CreateProductRequest{ProductName: name, ProductDescription: description, CurrentStockLevel: stock}
		return func() tea.Msg {
			if _, err := api.CreateProduct(req); err != nil {
				return apiMsg(err)
			}
			return productSavedMsg{}
		}
	}

	status, err := strconv.ParseBool(m.Inputs[formStatus].Value())
	if err != nil {
		return func() tea.Msg { return errMsg{err: err} }
	}
	id := m.ProductID
	req := dto.UpdateProductRequest{
		ProductName:        &name,
		ProductDescription: &description,
		CurrentStockLevel:  &stock,
		Status:             &status,
	}
	return func() tea.Msg {
		if _, err := api.UpdateProduct(id, req); err != nil {
			return apiMsg(err)
		}
		return productSavedMsg{}
	}
}

func (m FormModel) View() string {
	var b strings.Builder
	title := "stocklist - Add product"
	if m.ProductID != 0 {
		title = "stocklist - Edit product"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	if !m.Loaded {
		b.WriteString("Loading...\n")
		return b.String()
	}
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Enter to save, Esc to cancel"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorStyle(m.Err.Error()))
	}
	return b.String()
}

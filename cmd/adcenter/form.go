package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
	"github.com/seongmin-dev/adcenter/cmd/adcenter/ui"
	"github.com/seongmin-dev/adcenter/internal/contractform"
)

// Contract form input indexes
const (
	inputCompany = iota
	inputStartDate
	inputEndDate
	inputAmount
	contractInputCount
)

// initContractForm opens the creation form for the selected product
func (m Model) initContractForm(product api.Product) (tea.Model, tea.Cmd) {
	m.form = contractform.NewEngine(product, time.Now())
	m.inputs = make([]textinput.Model, contractInputCount)

	placeholders := [contractInputCount]string{
		"업체명 검색",
		"YYYY-MM-DD",
		"YYYY-MM-DD",
		"10,000 ~ 1,000,000",
	}
	for i, placeholder := range placeholders {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		if i == inputCompany {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.inputs[inputStartDate].SetValue(m.form.StartDate())
	m.inputs[inputEndDate].SetValue(m.form.EndDate())

	m.focusIndex = inputCompany
	m.companyMatches = nil
	m.companyCursor = 0
	m.lastKeyword = ""
	m.selectedProduct = &product
	m.view = ui.ViewContractNew
	return m, textinput.Blink
}

// updateContractForm routes a message to the focused form input and syncs
// the resulting value into the form engine.
func (m Model) updateContractForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	before := m.inputs[m.focusIndex].Value()
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	cmds = append(cmds, cmd)
	after := m.inputs[m.focusIndex].Value()

	if before != after {
		cmds = append(cmds, m.syncFormField(m.focusIndex, after)...)
	}
	// Changed values elsewhere (derived end date, normalized amount) flow
	// back from the engine into the inputs.
	m = m.reflectEngine()

	model := m
	return model, tea.Batch(cmds...)
}

// syncFormField pushes an edited value into the engine and returns any
// follow-up commands (the autocomplete debounce timer).
func (m *Model) syncFormField(index int, value string) []tea.Cmd {
	switch index {
	case inputCompany:
		m.form.SetCompanyText(value)
		m.lastKeyword = value
		m.searchSeq++
		if value == "" {
			m.companyMatches = nil
			return nil
		}
		return []tea.Cmd{m.debounce(m.searchSeq)}
	case inputStartDate:
		m.form.SetStartDate(value)
	case inputEndDate:
		m.form.SetEndDate(value)
	case inputAmount:
		m.form.SetAmountText(value)
	}
	return nil
}

// reflectEngine writes engine-owned values back into the text inputs.
func (m Model) reflectEngine() Model {
	if m.form == nil {
		return m
	}
	if v := m.form.EndDate(); m.inputs[inputEndDate].Value() != v {
		m.inputs[inputEndDate].SetValue(v)
		m.inputs[inputEndDate].CursorEnd()
	}
	if v := m.form.AmountText(); m.inputs[inputAmount].Value() != v {
		m.inputs[inputAmount].SetValue(v)
		m.inputs[inputAmount].CursorEnd()
	}
	return m
}

// selectCompanyMatch commits the highlighted autocomplete suggestion
func (m Model) selectCompanyMatch() Model {
	if m.companyCursor < 0 || m.companyCursor >= len(m.companyMatches) {
		return m
	}
	company := m.companyMatches[m.companyCursor]
	m.form.SelectCompany(company)
	m.inputs[inputCompany].SetValue(company.Name)
	m.inputs[inputCompany].CursorEnd()
	// Selecting must not kick off another search for the same text
	m.lastKeyword = company.Name
	m.searchSeq++
	m.companyMatches = nil
	m.companyCursor = 0
	return m
}

// handleFormSubmit validates the form and fires the creation request
func (m Model) handleFormSubmit() (tea.Model, tea.Cmd) {
	req, ok := m.form.BeginSubmit()
	if !ok {
		if !m.form.Pending() {
			m.message = msgCheckInputs
			m.messageType = ui.MessageTypeError
		}
		return m, nil
	}
	return m, m.submitContract(req)
}

// updateInputFocus applies focus to the input at focusIndex
func (m Model) updateInputFocus() Model {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

// updateInputs routes non-key messages to whichever form is active
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ui.ViewContractNew:
		return m.updateContractForm(msg)
	case ui.ViewContractFilter:
		return m.updateFilterInputs(msg)
	}
	return m, nil
}

package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
	"github.com/seongmin-dev/adcenter/cmd/adcenter/ui"
)

// handleKeyMsg processes keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear the toast on any key except enter
	if m.message != "" && msg.String() != "enter" {
		m.message = ""
	}

	inFormMode := len(m.inputs) > 0

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if inFormMode {
			return m.updateInputs(msg)
		}
		if m.view == ui.ViewHome {
			return m, tea.Quit
		}
		return m.navigateHome(), nil
	case "esc":
		return m.handleEscape()
	case "ctrl+b":
		m.sidebarOpen = !m.sidebarOpen
		return m, nil
	case "ctrl+s":
		if m.view == ui.ViewContractNew {
			return m.handleFormSubmit()
		}
	case "up", "k":
		return m.handleUpKey(msg)
	case "down", "j":
		return m.handleDownKey(msg)
	case "enter":
		return m.handleEnterKey()
	case "tab":
		return m.handleTabKey(1)
	case "shift+tab":
		return m.handleTabKey(-1)
	case "left", "h":
		return m.handleLeftKey(msg)
	case "right", "l":
		return m.handleRightKey(msg)
	case "[", "pgup":
		if m.view == ui.ViewContracts {
			return m.changePage(-1)
		}
	case "]", "pgdown":
		if m.view == ui.ViewContracts {
			return m.changePage(1)
		}
	case "f":
		if m.view == ui.ViewContracts {
			return m.openContractFilter()
		}
	case "r":
		if !inFormMode {
			return m.handleRefresh()
		}
	case "x":
		if m.view == ui.ViewContracts {
			return m.resetFilters()
		}
		if m.view == ui.ViewContractFilter && m.focusIndex == filterStatusRow {
			return m.resetFilters()
		}
	case "1", "2", "3", "4":
		if m.view == ui.ViewContractFilter && m.focusIndex == filterStatusRow {
			return m.handleStatusToggleKey(msg.String()), nil
		}
	}

	if inFormMode {
		return m.updateInputs(msg)
	}
	return m, nil
}

// navigateHome resets the view to the dashboard
func (m Model) navigateHome() Model {
	m.view = ui.ViewHome
	m.cursor = 0
	m.inputs = nil
	m.form = nil
	m.companyMatches = nil
	return m
}

// handleEscape steps one level back from the current view
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	switch m.view {
	case ui.ViewContractNew:
		// Abandon the form and pick a product again
		m.inputs = nil
		m.form = nil
		m.companyMatches = nil
		m.view = ui.ViewProductSelect
		m.cursor = 0
		return m, nil
	case ui.ViewContractFilter:
		m.inputs = nil
		m.filterInputs = nil
		m.view = ui.ViewContracts
		return m, nil
	case ui.ViewContractDetail:
		return m.handleDetailBack()
	case ui.ViewProductSelect, ui.ViewContracts, ui.ViewSettings:
		return m.navigateHome(), nil
	}
	return m, nil
}

// handleDetailBack returns to wherever the detail was opened from: the
// product picker after a fresh contract, otherwise the filtered list.
func (m Model) handleDetailBack() (tea.Model, tea.Cmd) {
	m.selectedContract = nil
	if m.detailFrom == ui.ViewContractNew {
		m.view = ui.ViewProductSelect
		m.cursor = 0
		return m, nil
	}
	return m.openContracts()
}

// handleUpKey handles up/k keys
func (m Model) handleUpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == ui.ViewContractNew {
		if msg.String() == "k" {
			return m.updateInputs(msg) // let 'k' through for typing
		}
		if m.focusIndex == inputCompany && len(m.companyMatches) > 0 {
			if m.companyCursor > 0 {
				m.companyCursor--
			}
			return m, nil
		}
		return m.moveFormFocus(-1), nil
	}
	if m.view == ui.ViewContractFilter {
		if msg.String() == "k" {
			return m.updateInputs(msg)
		}
		return m.moveFilterFocus(-1), nil
	}
	if m.focusOnSidebar {
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
		return m, nil
	}
	if m.cursor > 0 {
		m.cursor--
	}
	return m, nil
}

// handleDownKey handles down/j keys
func (m Model) handleDownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == ui.ViewContractNew {
		if msg.String() == "j" {
			return m.updateInputs(msg)
		}
		if m.focusIndex == inputCompany && len(m.companyMatches) > 0 {
			if m.companyCursor < len(m.companyMatches)-1 {
				m.companyCursor++
			}
			return m, nil
		}
		return m.moveFormFocus(1), nil
	}
	if m.view == ui.ViewContractFilter {
		if msg.String() == "j" {
			return m.updateInputs(msg)
		}
		return m.moveFilterFocus(1), nil
	}
	if m.focusOnSidebar {
		if m.sidebarCursor < len(ui.GetMainMenuItems())-1 {
			m.sidebarCursor++
		}
		return m, nil
	}
	if m.cursor < m.maxCursor() {
		m.cursor++
	}
	return m, nil
}

// maxCursor returns the last selectable index for the current view
func (m Model) maxCursor() int {
	switch m.view {
	case ui.ViewHome:
		return len(ui.GetMainMenuItems()) - 1
	case ui.ViewProductSelect:
		return len(m.products) - 1
	case ui.ViewContracts:
		if m.contractsPage == nil {
			return 0
		}
		return len(m.contractsPage.Content) - 1
	}
	return 0
}

// handleTabKey cycles focus within the active form
func (m Model) handleTabKey(direction int) (tea.Model, tea.Cmd) {
	switch m.view {
	case ui.ViewContractNew:
		return m.moveFormFocus(direction), nil
	case ui.ViewContractFilter:
		return m.moveFilterFocus(direction), nil
	}
	return m, nil
}

// moveFormFocus shifts contract form focus with wraparound
func (m Model) moveFormFocus(direction int) Model {
	m.focusIndex += direction
	if m.focusIndex >= contractInputCount {
		m.focusIndex = 0
	} else if m.focusIndex < 0 {
		m.focusIndex = contractInputCount - 1
	}
	m.companyMatches = nil
	return m.updateInputFocus()
}

// moveFilterFocus shifts filter form focus, including the status row
func (m Model) moveFilterFocus(direction int) Model {
	m.focusIndex += direction
	if m.focusIndex >= filterFocusCount {
		m.focusIndex = 0
	} else if m.focusIndex < 0 {
		m.focusIndex = filterFocusCount - 1
	}
	return m.updateFilterFocus()
}

// handleEnterKey handles the enter key
func (m Model) handleEnterKey() (tea.Model, tea.Cmd) {
	if m.focusOnSidebar {
		return m.handleSidebarSelect()
	}

	switch m.view {
	case ui.ViewHome:
		items := ui.GetMainMenuItems()
		if m.cursor < len(items) {
			return m.navigateTo(items[m.cursor].View)
		}
	case ui.ViewProductSelect:
		if m.cursor < len(m.products) {
			return m.initContractForm(m.products[m.cursor])
		}
	case ui.ViewContractNew:
		if m.focusIndex == inputCompany && len(m.companyMatches) > 0 {
			return m.selectCompanyMatch(), nil
		}
		if m.focusIndex == inputAmount {
			return m.handleFormSubmit()
		}
		return m.moveFormFocus(1), nil
	case ui.ViewContractFilter:
		return m.applyFilters()
	case ui.ViewContracts:
		if m.contractsPage != nil && m.cursor < len(m.contractsPage.Content) {
			contract := m.contractsPage.Content[m.cursor]
			m.selectedContract = &contract
			m.detailFrom = ui.ViewContracts
			m.view = ui.ViewContractDetail
			return m, nil
		}
	}
	return m, nil
}

// handleLeftKey moves focus to the sidebar
func (m Model) handleLeftKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.inputs) > 0 {
		return m.updateInputs(msg)
	}
	if m.sidebarOpen && !m.focusOnSidebar {
		m.focusOnSidebar = true
		m.sidebarCursor = m.sidebarIndexForView()
	}
	return m, nil
}

// handleRightKey returns focus to the content area
func (m Model) handleRightKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.inputs) > 0 {
		return m.updateInputs(msg)
	}
	m.focusOnSidebar = false
	return m, nil
}

// sidebarIndexForView maps the current view to its sidebar entry
func (m Model) sidebarIndexForView() int {
	for i, item := range ui.GetMainMenuItems() {
		switch m.view {
		case item.View:
			return i
		case ui.ViewContractDetail, ui.ViewContractFilter:
			if item.View == ui.ViewContracts {
				return i
			}
		case ui.ViewContractNew:
			if item.View == ui.ViewProductSelect {
				return i
			}
		}
	}
	return 0
}

// handleSidebarSelect activates the highlighted sidebar entry
func (m Model) handleSidebarSelect() (tea.Model, tea.Cmd) {
	items := ui.GetMainMenuItems()
	if m.sidebarCursor >= len(items) {
		return m, nil
	}
	m.focusOnSidebar = false
	return m.navigateTo(items[m.sidebarCursor].View)
}

// navigateTo switches to a top-level view
func (m Model) navigateTo(view ui.ViewState) (tea.Model, tea.Cmd) {
	m.inputs = nil
	m.form = nil
	m.companyMatches = nil
	m.cursor = 0

	switch view {
	case ui.ViewContracts:
		return m.openContracts()
	case ui.ViewProductSelect:
		m.view = ui.ViewProductSelect
		if len(m.products) == 0 {
			return m, m.fetchProducts()
		}
		return m, nil
	case ui.ViewSettings:
		m.view = ui.ViewSettings
		return m, nil
	}
	m.view = ui.ViewHome
	return m, nil
}

// handleRefresh reloads the data behind the current view
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	switch m.view {
	case ui.ViewProductSelect, ui.ViewHome:
		return m, m.fetchProducts()
	case ui.ViewContracts:
		m.loadingList = true
		return m, m.fetchContracts()
	case ui.ViewContractDetail:
		if m.selectedContract != nil {
			return m, m.fetchContract(m.selectedContract.ID)
		}
	}
	return m, nil
}

// handleStatusToggleKey flips the status mapped to a number key
func (m Model) handleStatusToggleKey(key string) Model {
	statuses := api.AllStatuses()
	idx := int(key[0] - '1')
	if idx >= 0 && idx < len(statuses) {
		m = m.toggleStatus(statuses[idx])
	}
	return m
}

package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
	"github.com/seongmin-dev/adcenter/cmd/adcenter/ui"
	"github.com/seongmin-dev/adcenter/internal/session"
)

// Filter form input indexes. The status row sits after the text inputs
// and is navigated like an input but toggled with number keys.
const (
	filterCompanyName = iota
	filterStartDate
	filterEndDate
	filterStatusRow
	filterFocusCount
)

// openContracts enters the contract list, restoring saved filters
func (m Model) openContracts() (tea.Model, tea.Cmd) {
	m.view = ui.ViewContracts
	m.cursor = 0
	m.page = 0
	m.inputs = nil
	m.loadingList = true
	return m, m.fetchContracts()
}

// openContractFilter opens the search filter form pre-filled from the
// current filters
func (m Model) openContractFilter() (tea.Model, tea.Cmd) {
	m.filterInputs = make([]textinput.Model, 3)

	fields := []struct {
		placeholder string
		value       string
	}{
		{"업체명", m.filters.CompanyName},
		{"시작일 YYYY-MM-DD", m.filters.StartDate},
		{"종료일 YYYY-MM-DD", m.filters.EndDate},
	}
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.SetValue(f.value)
		if i == 0 {
			ti.Focus()
		}
		m.filterInputs[i] = ti
	}

	m.focusIndex = filterCompanyName
	m.view = ui.ViewContractFilter
	m.inputs = m.filterInputs
	return m, textinput.Blink
}

// updateFilterInputs routes a message to the focused filter input
func (m Model) updateFilterInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focusIndex >= len(m.filterInputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInputs[m.focusIndex], cmd = m.filterInputs[m.focusIndex].Update(msg)
	m.inputs = m.filterInputs
	return m, cmd
}

// updateFilterFocus applies focus to the filter input at focusIndex
func (m Model) updateFilterFocus() Model {
	for i := range m.filterInputs {
		if i == m.focusIndex {
			m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	m.inputs = m.filterInputs
	return m
}

// toggleStatus flips one status in the filter set, keeping display order
func (m Model) toggleStatus(status api.Status) Model {
	for i, s := range m.filters.Statuses {
		if s == status {
			m.filters.Statuses = append(m.filters.Statuses[:i], m.filters.Statuses[i+1:]...)
			return m
		}
	}
	var next []api.Status
	for _, s := range api.AllStatuses() {
		if s == status || m.hasStatus(s) {
			next = append(next, s)
		}
	}
	m.filters.Statuses = next
	return m
}

func (m Model) hasStatus(status api.Status) bool {
	for _, s := range m.filters.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// applyFilters saves the filter form and reloads the first page
func (m Model) applyFilters() (tea.Model, tea.Cmd) {
	m.filters.CompanyName = m.filterInputs[filterCompanyName].Value()
	m.filters.CompanySearchKeyword = m.filters.CompanyName
	m.filters.StartDate = m.filterInputs[filterStartDate].Value()
	m.filters.EndDate = m.filterInputs[filterEndDate].Value()

	// Persistence is best effort; searching still works without it
	_ = m.store.Save(m.filters)

	m.view = ui.ViewContracts
	m.inputs = nil
	m.filterInputs = nil
	m.cursor = 0
	m.page = 0
	m.loadingList = true
	return m, m.fetchContracts()
}

// resetFilters clears all filters and the saved state
func (m Model) resetFilters() (tea.Model, tea.Cmd) {
	m.filters = session.SearchFilters{}
	m.store.Clear()
	if m.view == ui.ViewContractFilter {
		return m.openContractFilter()
	}
	m.page = 0
	m.loadingList = true
	return m, m.fetchContracts()
}

// changePage moves the list by delta pages within bounds
func (m Model) changePage(delta int) (tea.Model, tea.Cmd) {
	if m.contractsPage == nil {
		return m, nil
	}
	next := m.page + delta
	if next < 0 || next >= maxPages(m.contractsPage) {
		return m, nil
	}
	m.page = next
	m.cursor = 0
	m.loadingList = true
	return m, m.fetchContracts()
}

func maxPages(page *api.PageResponse[api.Contract]) int {
	if page.TotalPages < 1 {
		return 1
	}
	return page.TotalPages
}

package main

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
	"github.com/seongmin-dev/adcenter/cmd/adcenter/ui"
	"github.com/seongmin-dev/adcenter/internal/config"
	"github.com/seongmin-dev/adcenter/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Config{
		API: config.APIConfig{
			BaseURL: "http://localhost:8081/api",
			Timeout: time.Second,
		},
		Search: config.SearchConfig{
			Debounce: 10 * time.Millisecond,
			PageSize: 5,
		},
		StateDir: t.TempDir(),
	}
	m, err := initialModel(cfg, 80, 24)
	if err != nil {
		t.Fatalf("initialModel() error = %v", err)
	}
	return m
}

func TestStaleCompanyResponseDropped(t *testing.T) {
	m := newTestModel(t)
	m.searchSeq = 3
	m.companyMatches = []api.Company{{ID: 1, Name: "기존"}}

	updated, _ := m.Update(companiesMsg{seq: 2, companies: []api.Company{{ID: 9, Name: "늦은 응답"}}})
	got := updated.(Model)
	if len(got.companyMatches) != 1 || got.companyMatches[0].ID != 1 {
		t.Errorf("stale response replaced matches: %+v", got.companyMatches)
	}

	updated, _ = m.Update(companiesMsg{seq: 3, companies: []api.Company{{ID: 9, Name: "최신 응답"}}})
	got = updated.(Model)
	if len(got.companyMatches) != 1 || got.companyMatches[0].ID != 9 {
		t.Errorf("current response not applied: %+v", got.companyMatches)
	}
}

func TestSupersededDebounceIgnored(t *testing.T) {
	m := newTestModel(t)
	m.searchSeq = 5
	m.lastKeyword = "한빛"

	if _, cmd := m.Update(debounceMsg{seq: 4}); cmd != nil {
		t.Error("superseded debounce timer still fired a search")
	}
	if _, cmd := m.Update(debounceMsg{seq: 5}); cmd == nil {
		t.Error("current debounce timer did not fire a search")
	}
}

func TestStaleSearchFailureIgnored(t *testing.T) {
	m := newTestModel(t)
	m.searchSeq = 3

	lookupErr := errors.New("lookup failed")
	updated, _ := m.Update(companySearchFailedMsg{seq: 2, err: lookupErr})
	if got := updated.(Model).message; got != "" {
		t.Errorf("superseded search failure raised a notice: %q", got)
	}

	updated, _ = m.Update(companySearchFailedMsg{seq: 3, err: lookupErr})
	got := updated.(Model)
	if got.message != "lookup failed" || got.messageType != ui.MessageTypeError {
		t.Errorf("current search failure not surfaced: %q (%v)", got.message, got.messageType)
	}
}

func TestContractFormOpensWithDefaultDates(t *testing.T) {
	m := newTestModel(t)
	model, _ := m.initContractForm(api.Product{ID: 1, Name: "배너 광고"})
	got := model.(Model)

	start := got.form.StartDate()
	if start == "" || got.inputs[inputStartDate].Value() != start {
		t.Errorf("start date input = %q, want prefilled %q", got.inputs[inputStartDate].Value(), start)
	}
	end := got.form.EndDate()
	if end == "" || got.inputs[inputEndDate].Value() != end {
		t.Errorf("end date input = %q, want prefilled %q", got.inputs[inputEndDate].Value(), end)
	}
}

func TestContractCreatedOpensDetail(t *testing.T) {
	m := newTestModel(t)
	var model tea.Model
	model, _ = m.initContractForm(api.Product{ID: 1, Name: "배너 광고"})
	m = model.(Model)

	contract := &api.Contract{ID: 42, ContractNumber: "CT-2024-0042"}
	model, _ = m.Update(contractCreatedMsg{contract: contract})
	got := model.(Model)

	if got.view != ui.ViewContractDetail {
		t.Errorf("view = %v, want detail", got.view)
	}
	if got.detailFrom != ui.ViewContractNew {
		t.Errorf("detailFrom = %v, want contract form", got.detailFrom)
	}
	if got.selectedContract == nil || got.selectedContract.ID != 42 {
		t.Errorf("selectedContract = %+v", got.selectedContract)
	}
}

func TestDetailBackNavigation(t *testing.T) {
	m := newTestModel(t)

	// After creating a contract, back goes to the product picker
	m.view = ui.ViewContractDetail
	m.detailFrom = ui.ViewContractNew
	model, _ := m.handleEscape()
	if got := model.(Model).view; got != ui.ViewProductSelect {
		t.Errorf("back from created contract: view = %v, want product select", got)
	}

	// From the list, back returns to the list and refetches
	m.view = ui.ViewContractDetail
	m.detailFrom = ui.ViewContracts
	model, cmd := m.handleEscape()
	if got := model.(Model).view; got != ui.ViewContracts {
		t.Errorf("back from list: view = %v, want contracts", got)
	}
	if cmd == nil {
		t.Error("back to list did not refetch")
	}
}

func TestFiltersRestoredOnStartup(t *testing.T) {
	dir := t.TempDir()
	store := session.NewStore(dir)
	saved := session.SearchFilters{CompanyName: "한빛", Statuses: []api.Status{api.StatusPending}}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cfg := config.Config{
		API:      config.APIConfig{BaseURL: "http://localhost:8081/api", Timeout: time.Second},
		Search:   config.SearchConfig{Debounce: time.Millisecond, PageSize: 5},
		StateDir: dir,
	}
	m, err := initialModel(cfg, 80, 24)
	if err != nil {
		t.Fatalf("initialModel() error = %v", err)
	}
	if m.filters.CompanyName != "한빛" || len(m.filters.Statuses) != 1 {
		t.Errorf("filters not restored: %+v", m.filters)
	}
}

func TestStatusToggle(t *testing.T) {
	m := newTestModel(t)
	m = m.toggleStatus(api.StatusCompleted)
	m = m.toggleStatus(api.StatusPending)
	// Toggling keeps display order regardless of toggle order
	if len(m.filters.Statuses) != 2 ||
		m.filters.Statuses[0] != api.StatusPending ||
		m.filters.Statuses[1] != api.StatusCompleted {
		t.Errorf("statuses = %v", m.filters.Statuses)
	}
	m = m.toggleStatus(api.StatusPending)
	if len(m.filters.Statuses) != 1 || m.filters.Statuses[0] != api.StatusCompleted {
		t.Errorf("statuses after untoggle = %v", m.filters.Statuses)
	}
}

package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
)

// fetchProducts loads the advertising product catalog
func (m Model) fetchProducts() tea.Cmd {
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		products, err := client.ListProducts(ctx)
		if err != nil {
			return errMsg{err}
		}
		return productsMsg{products}
	}
}

// fetchContracts loads one page of the contract list for the current filters
func (m Model) fetchContracts() tea.Cmd {
	client := m.client
	timeout := m.cfg.API.Timeout
	query := m.filters.Query(m.page, m.cfg.Search.PageSize)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		page, err := client.ListContracts(ctx, query)
		if err != nil {
			return errMsg{err}
		}
		return contractsMsg{page}
	}
}

// fetchContract reloads a single contract's detail
func (m Model) fetchContract(id int64) tea.Cmd {
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		contract, err := client.GetContract(ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return contractMsg{contract}
	}
}

// debounce schedules a company search after the configured quiet period.
// The sequence number lets the update loop ignore superseded timers.
func (m Model) debounce(seq int) tea.Cmd {
	return tea.Tick(m.cfg.Search.Debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq}
	})
}

// searchCompanies runs the autocomplete lookup, tagged with its sequence
func (m Model) searchCompanies(keyword string, seq int) tea.Cmd {
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		companies, err := client.SearchCompanies(ctx, keyword)
		if err != nil {
			return companySearchFailedMsg{seq: seq, err: err}
		}
		return companiesMsg{seq: seq, companies: companies}
	}
}

// submitContract sends the contract creation request
func (m Model) submitContract(req *api.ContractRequest) tea.Cmd {
	client := m.client
	timeout := m.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		contract, err := client.CreateContract(ctx, req)
		if err != nil {
			return submitFailedMsg{err}
		}
		return contractCreatedMsg{contract}
	}
}

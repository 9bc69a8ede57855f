// Package session persists the contract list's search filters across runs,
// so reopening the list restores the last search.
package session

import (
	"net/url"
	"strings"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
)

// SearchFilters is the saved state of the contract list's search form.
type SearchFilters struct {
	CompanyName          string
	CompanySearchKeyword string
	Statuses             []api.Status
	StartDate            string
	EndDate              string
}

// IsZero reports whether no filter is set.
func (f SearchFilters) IsZero() bool {
	return f.CompanyName == "" && f.CompanySearchKeyword == "" &&
		len(f.Statuses) == 0 && f.StartDate == "" && f.EndDate == ""
}

// Query converts the filters into a contract list query.
func (f SearchFilters) Query(page, size int) api.ContractListQuery {
	return api.ContractListQuery{
		CompanyName: f.CompanyName,
		Statuses:    f.Statuses,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Page:        page,
		Size:        size,
	}
}

// Encode renders the filters as a URL-encoded query string.
func (f SearchFilters) Encode() string {
	params := url.Values{}
	if f.CompanyName != "" {
		params.Set("companyName", f.CompanyName)
	}
	if f.CompanySearchKeyword != "" {
		params.Set("companySearchKeyword", f.CompanySearchKeyword)
	}
	if len(f.Statuses) > 0 {
		strs := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			strs[i] = string(s)
		}
		params.Set("statuses", strings.Join(strs, ","))
	}
	if f.StartDate != "" {
		params.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		params.Set("endDate", f.EndDate)
	}
	return params.Encode()
}

// DecodeFilters parses a URL-encoded query string back into filters.
// Unknown keys are ignored.
func DecodeFilters(encoded string) (SearchFilters, error) {
	params, err := url.ParseQuery(encoded)
	if err != nil {
		return SearchFilters{}, err
	}
	f := SearchFilters{
		CompanyName:          params.Get("companyName"),
		CompanySearchKeyword: params.Get("companySearchKeyword"),
		StartDate:            params.Get("startDate"),
		EndDate:              params.Get("endDate"),
	}
	if raw := params.Get("statuses"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Statuses = append(f.Statuses, api.Status(s))
			}
		}
	}
	return f, nil
}

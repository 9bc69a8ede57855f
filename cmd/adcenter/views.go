package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
	"github.com/seongmin-dev/adcenter/cmd/adcenter/ui"
	"github.com/seongmin-dev/adcenter/internal/contractform"
	"github.com/seongmin-dev/adcenter/pkg/auth"
)

func (m Model) View() string {
	return m.renderLayout()
}

// renderHome renders the dashboard menu
func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("광고 센터") + "\n")
	b.WriteString(ui.SubtitleStyle.Render("광고 계약 관리 시스템") + "\n\n")

	for i, item := range ui.GetMainMenuItems() {
		cursor, style := renderCursor(!m.focusOnSidebar && m.cursor == i)
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, item.Icon, style.Render(item.Title)))
	}

	b.WriteString("\n" + ui.InfoStyle.Render("↑↓ 이동, Enter 선택, Ctrl+B 메뉴"))
	return b.String()
}

// renderCursor returns the cursor marker and style for a selectable row
func renderCursor(selected bool) (string, interface{ Render(...string) string }) {
	if selected {
		return ui.CursorStyle.Render("▸ "), ui.SelectedMenuItemStyle
	}
	return "  ", ui.MenuItemStyle
}

// renderProductSelect renders the advertising product picker
func (m Model) renderProductSelect() string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("광고 상품 선택") + "\n\n")

	if len(m.products) == 0 {
		b.WriteString(ui.InfoStyle.Render("상품을 불러오는 중입니다... (r 새로고침)"))
		return b.String()
	}

	for i, p := range m.products {
		cursor, style := renderCursor(m.cursor == i)
		line := p.Name
		if p.Description != "" {
			line += "  " + ui.BreadcrumbStyle.Render(p.Description)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(line)))
	}

	b.WriteString("\n" + ui.InfoStyle.Render("Enter 계약 작성, Esc 뒤로"))
	return b.String()
}

// renderContractForm renders the creation form with inline field errors
func (m Model) renderContractForm() string {
	if m.form == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("광고 계약 등록") + "\n")
	b.WriteString(ui.DetailKeyStyle.Render("상품") +
		ui.DetailValueStyle.Render(m.form.Product().Name) + "\n\n")

	labels := [contractInputCount]string{"업체", "계약 시작일", "계약 종료일", "계약 금액"}
	fieldKeys := [contractInputCount]string{
		contractform.FieldCompany,
		contractform.FieldStartDate,
		contractform.FieldEndDate,
		contractform.FieldAmount,
	}
	fieldErrors := m.form.FieldErrors()

	for i := range m.inputs {
		b.WriteString(ui.LabelStyle.Render(labels[i]+":") + "\n")
		b.WriteString("  " + m.inputs[i].View() + "\n")

		if i == inputCompany {
			b.WriteString(m.renderCompanySuggestions())
		}
		if msg, ok := fieldErrors[fieldKeys[i]]; ok {
			b.WriteString("  " + ui.FieldErrorStyle.Render(msg) + "\n")
		}
		b.WriteString("\n")
	}

	if m.form.Pending() {
		b.WriteString(ui.InfoStyle.Render("등록 중..."))
	} else if m.form.CanSubmit() {
		b.WriteString(ui.SuccessStyle.Render("Ctrl+S 등록") + ui.InfoStyle.Render("  Esc 취소"))
	} else {
		b.WriteString(ui.InfoStyle.Render("Tab 다음 항목, Ctrl+S 등록, Esc 취소"))
	}
	return b.String()
}

// renderCompanySuggestions renders the autocomplete dropdown
func (m Model) renderCompanySuggestions() string {
	if m.focusIndex != inputCompany || len(m.companyMatches) == 0 {
		return ""
	}
	var b strings.Builder
	for i, company := range m.companyMatches {
		style := ui.SuggestionStyle
		if i == m.companyCursor {
			style = ui.SuggestionSelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s (%s)", company.Name, company.CompanyNumber)) + "\n")
	}
	return b.String()
}

// renderContracts renders the filtered contract list page
func (m Model) renderContracts() string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("광고 현황 조회") + "\n")
	b.WriteString(m.renderFilterSummary() + "\n\n")

	if m.loadingList {
		b.WriteString(ui.InfoStyle.Render("조회 중..."))
		return b.String()
	}
	if m.contractsPage == nil || len(m.contractsPage.Content) == 0 {
		b.WriteString(ui.InfoStyle.Render("조회된 계약이 없습니다. (f 검색 조건, r 새로고침)"))
		return b.String()
	}

	header := fmt.Sprintf("%-14s %-16s %-12s %-23s %-12s %s",
		"계약번호", "업체", "상품", "계약기간", "금액", "상태")
	b.WriteString(ui.TableHeaderStyle.Render(header) + "\n")

	for i, c := range m.contractsPage.Content {
		row := fmt.Sprintf("%-14s %-16s %-12s %s ~ %s %12s %s",
			c.ContractNumber,
			c.Company.Name,
			c.Product.Name,
			c.StartDate,
			c.EndDate,
			contractform.FormatAmount(c.Amount.IntPart())+"원",
			ui.FormatStatus(string(c.Status), c.Status.Label()),
		)
		if m.cursor == i {
			b.WriteString(ui.TableSelectedRowStyle.Render("▸ "+row) + "\n")
		} else {
			b.WriteString(ui.TableRowStyle.Render("  "+row) + "\n")
		}
	}

	page := m.contractsPage
	b.WriteString("\n" + ui.BreadcrumbStyle.Render(
		fmt.Sprintf("%d / %d 페이지 · 총 %d건", page.Page+1, maxPages(page), page.TotalElements)))
	b.WriteString("\n" + ui.InfoStyle.Render("Enter 상세, f 검색 조건, x 조건 초기화, [ ] 페이지, Esc 뒤로"))
	return b.String()
}

// renderFilterSummary shows the active search conditions in one line
func (m Model) renderFilterSummary() string {
	if m.filters.IsZero() {
		return ui.BreadcrumbStyle.Render("검색 조건 없음")
	}
	var parts []string
	if m.filters.CompanyName != "" {
		parts = append(parts, "업체: "+m.filters.CompanyName)
	}
	if len(m.filters.Statuses) > 0 {
		labels := make([]string, len(m.filters.Statuses))
		for i, s := range m.filters.Statuses {
			labels[i] = s.Label()
		}
		parts = append(parts, "상태: "+strings.Join(labels, ","))
	}
	if m.filters.StartDate != "" || m.filters.EndDate != "" {
		parts = append(parts, fmt.Sprintf("기간: %s ~ %s", m.filters.StartDate, m.filters.EndDate))
	}
	return ui.BreadcrumbActiveStyle.Render(strings.Join(parts, "  |  "))
}

// renderContractFilter renders the search condition form
func (m Model) renderContractFilter() string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("검색 조건") + "\n\n")

	labels := []string{"업체명", "계약 시작일", "계약 종료일"}
	for i := range m.filterInputs {
		b.WriteString(ui.LabelStyle.Render(labels[i]+":") + "\n")
		b.WriteString("  " + m.filterInputs[i].View() + "\n\n")
	}

	b.WriteString(ui.LabelStyle.Render("상태:"))
	if m.focusIndex == filterStatusRow {
		b.WriteString(" " + ui.CursorStyle.Render("◂ 1-4 선택 ▸"))
	}
	b.WriteString("\n  ")
	for i, status := range api.AllStatuses() {
		mark := "[ ]"
		if m.hasStatus(status) {
			mark = "[✓]"
		}
		b.WriteString(fmt.Sprintf("%d %s %s   ", i+1, mark, status.Label()))
	}
	b.WriteString("\n\n" + ui.InfoStyle.Render("Enter 조회, Esc 취소"))
	return b.String()
}

// renderContractDetail renders one contract's detail card
func (m Model) renderContractDetail() string {
	c := m.selectedContract
	if c == nil {
		return ui.InfoStyle.Render("계약 정보를 불러오는 중입니다...")
	}

	rows := []struct {
		key   string
		value string
	}{
		{"계약번호", c.ContractNumber},
		{"업체", fmt.Sprintf("%s (%s)", c.Company.Name, c.Company.CompanyNumber)},
		{"상품", c.Product.Name},
		{"계약기간", fmt.Sprintf("%s ~ %s", c.StartDate, c.EndDate)},
		{"계약금액", contractform.FormatAmount(c.Amount.IntPart()) + "원"},
		{"상태", ui.FormatStatus(string(c.Status), c.Status.Label())},
	}
	if c.CreatedAt != "" {
		rows = append(rows, struct{ key, value string }{"등록일", c.CreatedAt})
	}

	var body strings.Builder
	for _, row := range rows {
		body.WriteString(ui.DetailKeyStyle.Render(row.key) +
			ui.DetailValueStyle.Render(row.value) + "\n")
	}

	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("계약 상세") + "\n")
	b.WriteString(ui.CardStyle.Render(body.String()) + "\n")
	if m.detailFrom == ui.ViewContractNew {
		b.WriteString(ui.InfoStyle.Render("Esc 상품 선택으로, r 새로고침"))
	} else {
		b.WriteString(ui.InfoStyle.Render("Esc 목록으로, r 새로고침"))
	}
	return b.String()
}

// renderSettings renders the connection and token information view
func (m Model) renderSettings() string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("설정") + "\n\n")

	rows := []struct {
		key   string
		value string
	}{
		{"API 주소", m.cfg.API.BaseURL},
		{"요청 제한", m.cfg.API.Timeout.String()},
		{"검색 지연", m.cfg.Search.Debounce.String()},
		{"페이지 크기", fmt.Sprintf("%d", m.cfg.Search.PageSize)},
	}
	for _, row := range rows {
		b.WriteString(ui.DetailKeyStyle.Render(row.key) +
			ui.DetailValueStyle.Render(row.value) + "\n")
	}

	b.WriteString("\n" + ui.SubtitleStyle.Render("인증 토큰") + "\n")
	b.WriteString(m.renderTokenInfo())
	b.WriteString("\n" + ui.InfoStyle.Render("Esc 뒤로"))
	return b.String()
}

// renderTokenInfo decodes the configured token for display
func (m Model) renderTokenInfo() string {
	if m.cfg.API.Token == "" {
		return ui.StatusOfflineStyle.Render("토큰이 설정되지 않았습니다 (ADCENTER_TOKEN)") + "\n"
	}

	info, err := auth.Inspect(m.cfg.API.Token)
	if err != nil {
		return ui.ErrorStyle.Render("토큰을 해석할 수 없습니다: "+err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(ui.DetailKeyStyle.Render("사용자") + ui.DetailValueStyle.Render(info.Subject) + "\n")
	if info.Issuer != "" {
		b.WriteString(ui.DetailKeyStyle.Render("발급자") + ui.DetailValueStyle.Render(info.Issuer) + "\n")
	}
	if !info.ExpiresAt.IsZero() {
		value := info.ExpiresAt.Local().Format("2006-01-02 15:04")
		if info.Expired(time.Now()) {
			value += " " + ui.FieldErrorStyle.Render("(만료됨)")
		}
		b.WriteString(ui.DetailKeyStyle.Render("만료일") + ui.DetailValueStyle.Render(value) + "\n")
	}
	return b.String()
}

package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/ui"
)

// renderLayout assembles header, sidebar, content and footer
func (m Model) renderLayout() string {
	sidebarWidth := ui.SidebarCollapsedW
	if m.sidebarOpen {
		sidebarWidth = ui.SidebarWidth
	}

	contentWidth := m.width - sidebarWidth
	if contentWidth < 20 {
		contentWidth = 20
	}
	contentHeight := m.height - ui.HeaderHeight - ui.FooterHeight
	if contentHeight < 5 {
		contentHeight = 5
	}

	header := m.renderHeader(m.width)
	sidebar := m.renderSidebar(sidebarWidth, contentHeight)
	content := m.renderContent(contentWidth, contentHeight)
	footer := m.renderFooter(m.width)

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(lipgloss.Left, header, mainArea, footer)
}

// renderHeader renders the top bar with breadcrumb and connection state
func (m Model) renderHeader(width int) string {
	logo := ui.HeaderTitleStyle.Render("▦ " + appTitle)
	crumb := ui.FormatBreadcrumb(m.breadcrumb()...)

	status := ui.StatusOfflineStyle.Render("○ 미인증")
	if m.cfg.API.Token != "" {
		status = ui.StatusActiveStyle.Render("◉") + " " + ui.FooterLabelStyle.Render("인증됨")
	}

	left := logo + "  " + crumb
	spacing := width - lipgloss.Width(left) - lipgloss.Width(status) - 4
	if spacing < 1 {
		spacing = 1
	}
	return ui.HeaderStyle.Width(width).Render(left + strings.Repeat(" ", spacing) + status)
}

// breadcrumb returns the path segments for the current view
func (m Model) breadcrumb() []string {
	switch m.view {
	case ui.ViewProductSelect:
		return []string{"홈", "광고 계약"}
	case ui.ViewContractNew:
		product := ""
		if m.selectedProduct != nil {
			product = m.selectedProduct.Name
		}
		return []string{"홈", "광고 계약", product}
	case ui.ViewContracts:
		return []string{"홈", "광고 현황 조회"}
	case ui.ViewContractFilter:
		return []string{"홈", "광고 현황 조회", "검색 조건"}
	case ui.ViewContractDetail:
		return []string{"홈", "광고 현황 조회", "계약 상세"}
	case ui.ViewSettings:
		return []string{"홈", "설정"}
	default:
		return []string{"홈"}
	}
}

// renderSidebar renders the collapsible menu
func (m Model) renderSidebar(width, height int) string {
	items := ui.GetMainMenuItems()

	var b strings.Builder
	if m.sidebarOpen {
		toggleHint := ui.SidebarToggleStyle.Render("[Ctrl+B]")
		b.WriteString(ui.SidebarHeaderStyle.Render("메뉴") + " " + toggleHint + "\n\n")
	} else {
		b.WriteString(ui.SidebarToggleStyle.Render("≡") + "\n\n")
	}

	currentIdx := m.sidebarIndexForView()
	for i, item := range items {
		style := ui.SidebarItemStyle
		cursor := "  "
		switch {
		case m.focusOnSidebar && m.sidebarCursor == i:
			style = ui.SidebarItemSelectedStyle
			cursor = "▸ "
		case currentIdx == i:
			style = ui.SidebarItemHoverStyle
			cursor = "▹ "
		}

		if m.sidebarOpen {
			b.WriteString(style.Width(width-2).Render(cursor+item.Icon+" "+item.Title) + "\n")
		} else {
			b.WriteString(style.Render(item.Icon) + "\n")
		}
	}

	content := b.String()
	lines := strings.Count(content, "\n")
	padding := strings.Repeat("\n", max(0, height-1-lines))
	return ui.SidebarStyle.Width(width).Height(height).Render(content + padding)
}

// renderContent renders the active view plus any toast line
func (m Model) renderContent(width, height int) string {
	var content string
	switch m.view {
	case ui.ViewProductSelect:
		content = m.renderProductSelect()
	case ui.ViewContractNew:
		content = m.renderContractForm()
	case ui.ViewContracts:
		content = m.renderContracts()
	case ui.ViewContractFilter:
		content = m.renderContractFilter()
	case ui.ViewContractDetail:
		content = m.renderContractDetail()
	case ui.ViewSettings:
		content = m.renderSettings()
	default:
		content = m.renderHome()
	}

	if m.message != "" {
		var style = ui.InfoStyle
		switch m.messageType {
		case ui.MessageTypeError:
			style = ui.ErrorStyle
		case ui.MessageTypeSuccess:
			style = ui.SuccessStyle
		}
		content += "\n" + style.Render(m.message)
	}

	return ui.ContentStyle.Width(width).Height(height).Render(content)
}

// renderFooter renders contextual shortcuts and the API endpoint
func (m Model) renderFooter(width int) string {
	help := m.contextualHelp()
	apiInfo := ui.FooterHelpStyle.Render(m.cfg.API.BaseURL)

	spacing := width - lipgloss.Width(help) - lipgloss.Width(apiInfo) - 4
	if spacing < 1 {
		spacing = 1
	}
	return ui.FooterStyle.Width(width).Render(help + strings.Repeat(" ", spacing) + apiInfo)
}

// contextualHelp builds the footer shortcut line for the current view
func (m Model) contextualHelp() string {
	sep := ui.FooterHelpStyle.Render(" │ ")
	item := ui.FormatHelpItem

	base := item("Ctrl+B", "메뉴")
	if m.focusOnSidebar {
		return base + sep + item("↑↓", "이동") + sep + item("Enter", "선택") + sep + item("→", "본문")
	}

	switch m.view {
	case ui.ViewContractNew:
		return item("Tab", "다음") + sep + item("Ctrl+S", "등록") + sep + item("Esc", "취소")
	case ui.ViewContractFilter:
		return item("Tab", "다음") + sep + item("Enter", "조회") + sep + item("Esc", "취소")
	case ui.ViewContracts:
		return base + sep + item("f", "검색") + sep + item("[ ]", "페이지") + sep + item("Esc", "뒤로")
	case ui.ViewContractDetail:
		return base + sep + item("r", "새로고침") + sep + item("Esc", "뒤로")
	case ui.ViewHome:
		return base + sep + item("←", "메뉴") + sep + item("q", "종료")
	default:
		return base + sep + item("Esc", "뒤로") + sep + item("q", "종료")
	}
}

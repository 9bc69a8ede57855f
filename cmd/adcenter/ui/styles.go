package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Message type constants for consistent UI messaging
const (
	// MessageTypeError indicates an error message style.
	MessageTypeError = "error"
	// MessageTypeSuccess indicates a success message style.
	MessageTypeSuccess = "success"
	// MessageTypeInfo indicates an informational message style.
	MessageTypeInfo = "info"
)

// ╔═══════════════════════════════════════════════════════════════════════════╗
// ║  SIGNAL TERMINAL - Amber & Teal Broadcast Theme                            ║
// ╚═══════════════════════════════════════════════════════════════════════════╝
var (
	// Backgrounds
	bgInk     = lipgloss.Color("#0b0e14") // deepest background
	bgPanel   = lipgloss.Color("#131721") // sidebars, bars
	bgRaised  = lipgloss.Color("#1c2230") // selected rows, cards
	bgCharway = lipgloss.Color("#232b3d") // hover surfaces

	// Accents
	signalAmber = lipgloss.Color("#ffb454") // primary accent
	signalTeal  = lipgloss.Color("#39d7c8") // secondary accent, links
	signalGreen = lipgloss.Color("#7fd962") // success, active
	signalRed   = lipgloss.Color("#f26d78") // errors
	signalGold  = lipgloss.Color("#e6b450") // pending, warnings
	signalIris  = lipgloss.Color("#d2a6ff") // highlights

	// Text
	textPrimary = lipgloss.Color("#e6e1cf")
	textSoft    = lipgloss.Color("#b3b1ad")
	textFaint   = lipgloss.Color("#5c6773")
	textBright  = lipgloss.Color("#ffffff")

	borderDim = lipgloss.Color("#2d3446")

	// ═══════════════════════════════════════════════════════════════════════
	// LAYOUT DIMENSIONS
	// ═══════════════════════════════════════════════════════════════════════

	// SidebarWidth is the expanded sidebar width in character cells.
	SidebarWidth = 24
	// SidebarCollapsedW is the collapsed sidebar width in character cells.
	SidebarCollapsedW = 4
	// HeaderHeight is the header height in terminal rows.
	HeaderHeight = 3
	// FooterHeight is the footer height in terminal rows.
	FooterHeight = 2

	// ═══════════════════════════════════════════════════════════════════════
	// HEADER STYLES
	// ═══════════════════════════════════════════════════════════════════════

	HeaderStyle = lipgloss.NewStyle().
			Background(bgPanel).
			Foreground(textPrimary).
			Bold(true).
			Padding(0, 2).
			Height(HeaderHeight).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottomForeground(signalAmber)

	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(signalAmber).
				Bold(true)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(textFaint)

	BreadcrumbSeparatorStyle = lipgloss.NewStyle().
					Foreground(signalTeal)

	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(signalAmber).
				Bold(true)

	// ═══════════════════════════════════════════════════════════════════════
	// SIDEBAR STYLES
	// ═══════════════════════════════════════════════════════════════════════

	SidebarStyle = lipgloss.NewStyle().
			Background(bgInk).
			Padding(1, 0).
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRightForeground(borderDim)

	SidebarHeaderStyle = lipgloss.NewStyle().
				Foreground(signalTeal).
				Bold(true).
				Padding(0, 2).
				MarginBottom(1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(textSoft).
				Padding(0, 2)

	SidebarItemHoverStyle = lipgloss.NewStyle().
				Background(bgCharway).
				Foreground(signalTeal).
				Padding(0, 2)

	SidebarItemSelectedStyle = lipgloss.NewStyle().
					Background(bgRaised).
					Foreground(signalAmber).
					Bold(true).
					Padding(0, 2)

	SidebarToggleStyle = lipgloss.NewStyle().
				Foreground(textFaint).
				Padding(0, 1)

	// ═══════════════════════════════════════════════════════════════════════
	// FOOTER STYLES
	// ═══════════════════════════════════════════════════════════════════════

	FooterStyle = lipgloss.NewStyle().
			Background(bgInk).
			Foreground(textSoft).
			Padding(0, 2).
			Height(FooterHeight).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTopForeground(borderDim)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(signalGreen).
			Bold(true)

	FooterLabelStyle = lipgloss.NewStyle().
				Foreground(textPrimary)

	FooterHelpStyle = lipgloss.NewStyle().
			Foreground(textFaint)

	// ═══════════════════════════════════════════════════════════════════════
	// CONTENT / BASE STYLES
	// ═══════════════════════════════════════════════════════════════════════

	ContentStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(signalAmber).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(signalTeal).
			MarginBottom(1)

	MenuItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(textSoft)

	SelectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(signalAmber).
				Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(signalTeal).
			Bold(true)

	// ═══════════════════════════════════════════════════════════════════════
	// STATUS STYLES
	// ═══════════════════════════════════════════════════════════════════════

	StatusActiveStyle = lipgloss.NewStyle().
				Foreground(signalGreen).
				Bold(true)

	StatusPendingStyle = lipgloss.NewStyle().
				Foreground(signalGold).
				Bold(true)

	StatusCancelledStyle = lipgloss.NewStyle().
				Foreground(signalRed).
				Bold(true)

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(textFaint)

	StatusOfflineStyle = lipgloss.NewStyle().
				Foreground(textFaint)

	// ═══════════════════════════════════════════════════════════════════════
	// TABLE STYLES
	// ═══════════════════════════════════════════════════════════════════════

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(signalTeal).
				BorderBottom(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(borderDim)

	TableRowStyle = lipgloss.NewStyle().
			PaddingRight(2).
			Foreground(textSoft)

	TableSelectedRowStyle = lipgloss.NewStyle().
				PaddingRight(2).
				Background(bgRaised).
				Foreground(signalAmber).
				Bold(true)

	// ═══════════════════════════════════════════════════════════════════════
	// FORM STYLES
	// ═══════════════════════════════════════════════════════════════════════

	LabelStyle = lipgloss.NewStyle().
			Foreground(signalTeal)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(signalRed)

	SuggestionStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(textSoft)

	SuggestionSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Background(bgRaised).
				Foreground(signalTeal).
				Bold(true)

	// ═══════════════════════════════════════════════════════════════════════
	// MESSAGE STYLES
	// ═══════════════════════════════════════════════════════════════════════

	ErrorStyle = lipgloss.NewStyle().
			Foreground(signalRed).
			Bold(true).
			MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(signalGreen).
			Bold(true).
			MarginTop(1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(signalIris).
			MarginTop(1)

	// ═══════════════════════════════════════════════════════════════════════
	// DETAIL VIEW STYLES
	// ═══════════════════════════════════════════════════════════════════════

	DetailKeyStyle = lipgloss.NewStyle().
			Foreground(signalTeal).
			Width(14)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(textPrimary)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderDim).
			Padding(1, 2).
			MarginBottom(1)
)

// FormatStatus returns a styled Korean label for a contract status code.
func FormatStatus(status, label string) string {
	switch strings.ToUpper(status) {
	case "IN_PROGRESS":
		return StatusActiveStyle.Render(label)
	case "PENDING":
		return StatusPendingStyle.Render(label)
	case "CANCELLED":
		return StatusCancelledStyle.Render(label)
	case "COMPLETED":
		return StatusDoneStyle.Render(label)
	default:
		return DetailValueStyle.Render(label)
	}
}

// FormatHelpItem renders a help item as "Key Label"
func FormatHelpItem(key, label string) string {
	return FooterKeyStyle.Render(key) + " " + FooterLabelStyle.Render(label)
}

// FormatBreadcrumb renders breadcrumb segments with separators
func FormatBreadcrumb(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for i, seg := range segments {
		if i == len(segments)-1 {
			b.WriteString(BreadcrumbActiveStyle.Render(seg))
		} else {
			b.WriteString(BreadcrumbStyle.Render(seg))
			b.WriteString(BreadcrumbSeparatorStyle.Render(" › "))
		}
	}
	return b.String()
}

package ui

// ViewState represents the current view
type ViewState int

const (
	ViewHome ViewState = iota
	ViewProductSelect
	ViewContractNew
	ViewContracts
	ViewContractFilter
	ViewContractDetail
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Title string
	Icon  string
	View  ViewState
}

// mainMenuItems is the internal slice of menu items
var mainMenuItems = []MenuItem{
	{Title: "광고 현황 조회", Icon: "◆", View: ViewContracts},
	{Title: "광고 계약", Icon: "◈", View: ViewProductSelect},
	{Title: "설정", Icon: "▣", View: ViewSettings},
}

// GetMainMenuItems returns a copy of the main menu items to prevent mutation
func GetMainMenuItems() []MenuItem {
	items := make([]MenuItem, len(mainMenuItems))
	copy(items, mainMenuItems)
	return items
}

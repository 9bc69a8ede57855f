package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
	"github.com/seongmin-dev/adcenter/cmd/adcenter/ui"
	"github.com/seongmin-dev/adcenter/internal/config"
	"github.com/seongmin-dev/adcenter/internal/contractform"
	"github.com/seongmin-dev/adcenter/internal/session"
)

// Shared UI strings
const (
	msgCheckInputs = "입력값을 확인해주세요."
	appTitle       = "AdCenter"
)

// Model is the main application model
type Model struct {
	client *api.Client
	cfg    config.Config
	store  *session.Store
	view   ui.ViewState
	cursor int

	message     string
	messageType string // "error", "success", "info"

	// Data
	products      []api.Product
	contractsPage *api.PageResponse[api.Contract]

	// Selected items
	selectedProduct  *api.Product
	selectedContract *api.Contract
	detailFrom       ui.ViewState // view the detail was opened from

	// Contract form
	form           *contractform.Engine
	inputs         []textinput.Model
	focusIndex     int
	companyMatches []api.Company
	companyCursor  int
	searchSeq      int
	lastKeyword    string

	// Contract list
	filters      session.SearchFilters
	filterInputs []textinput.Model
	page         int
	loadingList  bool

	// UI state
	sidebarOpen    bool
	sidebarCursor  int
	focusOnSidebar bool

	// Window size
	width  int
	height int
}

func initialModel(cfg config.Config, width, height int) (Model, error) {
	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	if err != nil {
		return Model{}, err
	}
	if cfg.API.Token != "" {
		client.SetToken(cfg.API.Token)
	}

	store := session.NewStore(cfg.StateDir)
	filters, _ := store.Load()

	return Model{
		client:      client,
		cfg:         cfg,
		store:       store,
		view:        ui.ViewHome,
		filters:     filters,
		sidebarOpen: true,
		width:       width,
		height:      height,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchProducts())
}

// Messages for async operations
type productsMsg struct{ products []api.Product }
type contractsMsg struct{ page *api.PageResponse[api.Contract] }
type contractMsg struct{ contract *api.Contract }
type companiesMsg struct {
	seq       int
	companies []api.Company
}
type companySearchFailedMsg struct {
	seq int
	err error
}
type debounceMsg struct{ seq int }
type contractCreatedMsg struct{ contract *api.Contract }
type submitFailedMsg struct{ err error }
type errMsg struct{ err error }
type successMsg struct{ message string }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case productsMsg:
		m.products = msg.products
		return m, nil

	case contractsMsg:
		m.contractsPage = msg.page
		m.loadingList = false
		return m, nil

	case contractMsg:
		m.selectedContract = msg.contract
		return m, nil

	case debounceMsg:
		// Only the latest keystroke's timer may trigger a search
		if msg.seq != m.searchSeq {
			return m, nil
		}
		return m, m.searchCompanies(m.lastKeyword, msg.seq)

	case companiesMsg:
		// Drop responses that arrived after a newer keystroke
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.companyMatches = msg.companies
		m.companyCursor = 0
		return m, nil

	case companySearchFailedMsg:
		// A newer keystroke owns the suggestion list; its lookup will
		// report its own outcome
		if msg.seq != m.searchSeq {
			return m, nil
		}
		return m.handleError(errMsg{msg.err})

	case contractCreatedMsg:
		return m.handleContractCreated(msg)

	case submitFailedMsg:
		return m.handleSubmitFailed(msg), nil

	case errMsg:
		return m.handleError(msg)

	case successMsg:
		m.message = msg.message
		m.messageType = ui.MessageTypeSuccess
		return m, nil
	}

	if len(m.inputs) > 0 {
		return m.updateInputs(msg)
	}
	return m, nil
}

// handleContractCreated finishes the submission and opens the new contract.
func (m Model) handleContractCreated(msg contractCreatedMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		m.form.FinishSubmit(nil)
	}
	m.selectedContract = msg.contract
	m.detailFrom = ui.ViewContractNew
	m.view = ui.ViewContractDetail
	m.inputs = nil
	m.form = nil
	m.companyMatches = nil
	m.message = fmt.Sprintf("%s 계약이 등록되었습니다. (시작일 %s)",
		msg.contract.Product.Name, msg.contract.StartDate)
	m.messageType = ui.MessageTypeSuccess
	return m, nil
}

// handleError shows a toast for failed requests. A vanished record kicks
// the user back to the nearest listing instead of a dead detail view.
func (m Model) handleError(msg errMsg) (tea.Model, tea.Cmd) {
	m.message = msg.err.Error()
	m.messageType = ui.MessageTypeError
	m.loadingList = false

	if apiErr := api.AsAPIError(msg.err); apiErr != nil && apiErr.NotFound() {
		switch m.view {
		case ui.ViewContractDetail:
			m.selectedContract = nil
			m.view = ui.ViewContracts
			m.loadingList = true
			return m, m.fetchContracts()
		case ui.ViewContractNew:
			m.inputs = nil
			m.form = nil
			m.companyMatches = nil
			m.view = ui.ViewProductSelect
			return m, m.fetchProducts()
		}
	}
	return m, nil
}

// handleSubmitFailed surfaces server-side validation on the form.
func (m Model) handleSubmitFailed(msg submitFailedMsg) Model {
	if m.form != nil {
		m.form.FinishSubmit(msg.err)
	}
	if apiErr := api.AsAPIError(msg.err); apiErr != nil && len(apiErr.FieldErrors()) > 0 {
		m.message = msgCheckInputs
	} else {
		m.message = msg.err.Error()
	}
	m.messageType = ui.MessageTypeError
	return m
}

func main() {
	cfg := *config.Load()
	setupLogging(cfg)

	if len(os.Args) > 1 && os.Args[1] == "ssh" {
		sshMain(cfg)
		return
	}

	m, err := initialModel(cfg, 80, 24)
	if err != nil {
		log.Error("invalid API URL", "url", cfg.API.BaseURL, "error", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program failed", "error", err)
		os.Exit(1)
	}
}

// setupLogging applies the configured log level.
func setupLogging(cfg config.Config) {
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
}

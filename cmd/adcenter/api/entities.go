package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// API path constants
const (
	productsPath        = "/products"
	productByIDPathFmt  = "/products/%d"
	companiesPath       = "/companies"
	companySearchPath   = "/companies/search"
	companyByIDPathFmt  = "/companies/%d"
	contractsPath       = "/contracts"
	contractByIDPathFmt = "/contracts/%d"
)

// Status is a contract lifecycle status.
type Status string

// Contract lifecycle statuses
const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCancelled  Status = "CANCELLED"
	StatusCompleted  Status = "COMPLETED"
)

// AllStatuses lists every contract status in display order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCancelled, StatusCompleted}
}

// Label returns the Korean display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "집행전"
	case StatusInProgress:
		return "진행중"
	case StatusCancelled:
		return "광고취소"
	case StatusCompleted:
		return "광고종료"
	default:
		return string(s)
	}
}

// Product represents an advertising product.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Company represents a client company.
type Company struct {
	ID            int64  `json:"id"`
	CompanyNumber string `json:"companyNumber"`
	Name          string `json:"name"`
	Type          string `json:"type"`
}

// Contract represents an advertising contract.
type Contract struct {
	ID                int64           `json:"id"`
	ContractNumber    string          `json:"contractNumber"`
	Company           Company         `json:"company"`
	Product           Product         `json:"product"`
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate"`
	Amount            decimal.Decimal `json:"amount"`
	Status            Status          `json:"status"`
	StatusDescription string          `json:"statusDescription"`
	CreatedAt         string          `json:"createdAt"`
}

// ContractRequest is the request payload for creating a contract.
type ContractRequest struct {
	CompanyID int64  `json:"companyId"`
	ProductID int64  `json:"productId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Amount    int64  `json:"amount"`
}

// ContractListQuery selects and pages the contract list.
type ContractListQuery struct {
	CompanyName string
	Statuses    []Status
	StartDate   string
	EndDate     string
	Page        int
	Size        int
}

// Encode renders the query as URL parameters. Zero-valued fields are omitted,
// except Page which is meaningful at 0.
func (q ContractListQuery) Encode() string {
	params := url.Values{}
	if q.CompanyName != "" {
		params.Set("companyName", q.CompanyName)
	}
	if len(q.Statuses) > 0 {
		strs := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			strs[i] = string(s)
		}
		params.Set("statuses", strings.Join(strs, ","))
	}
	if q.StartDate != "" {
		params.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("endDate", q.EndDate)
	}
	params.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		params.Set("size", strconv.Itoa(q.Size))
	}
	return params.Encode()
}

// PageResponse wraps a page of results with pagination metadata.
type PageResponse[T any] struct {
	Content       []T  `json:"content"`
	Page          int  `json:"page"`
	Size          int  `json:"size"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	HasNext       bool `json:"hasNext"`
	HasPrevious   bool `json:"hasPrevious"`
}

// getJSON fetches a single entity.
func getJSON[T any](ctx context.Context, c *Client, path string) (*T, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

// getList fetches a plain JSON array.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return items, nil
}

// ListProducts fetches all advertising products.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	return getList[Product](ctx, c, productsPath)
}

// GetProduct fetches a product by ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return getJSON[Product](ctx, c, fmt.Sprintf(productByIDPathFmt, id))
}

// ListCompanies fetches all client companies.
func (c *Client) ListCompanies(ctx context.Context) ([]Company, error) {
	return getList[Company](ctx, c, companiesPath)
}

// SearchCompanies searches companies by keyword for autocomplete.
// A blank keyword returns an empty result without issuing a request.
func (c *Client) SearchCompanies(ctx context.Context, keyword string) ([]Company, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}
	path := companySearchPath + "?keyword=" + url.QueryEscape(keyword)
	return getList[Company](ctx, c, path)
}

// GetCompany fetches a company by ID.
func (c *Client) GetCompany(ctx context.Context, id int64) (*Company, error) {
	return getJSON[Company](ctx, c, fmt.Sprintf(companyByIDPathFmt, id))
}

// CreateContract creates an advertising contract.
func (c *Client) CreateContract(ctx context.Context, req *ContractRequest) (*Contract, error) {
	body, err := c.post(ctx, contractsPath, req)
	if err != nil {
		return nil, err
	}
	var contract Contract
	if err := json.Unmarshal(body, &contract); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &contract, nil
}

// GetContract fetches a contract by ID.
func (c *Client) GetContract(ctx context.Context, id int64) (*Contract, error) {
	return getJSON[Contract](ctx, c, fmt.Sprintf(contractByIDPathFmt, id))
}

// ListContracts fetches a filtered, paginated contract list.
func (c *Client) ListContracts(ctx context.Context, query ContractListQuery) (*PageResponse[Contract], error) {
	path := contractsPath
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return getJSON[PageResponse[Contract]](ctx, c, path)
}

package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/handlers"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/summary"
)

// AssetAccount is one account within an asset group.
type AssetAccount struct {
	Name       string `json:"name" doc:"Account name"`
	Balance    string `json:"balance" doc:"Decimal balance"`
	Percentage string `json:"percentage" doc:"Share of total assets, two decimal places"`
}

// AssetGroup aggregates the accounts of one type.
type AssetGroup struct {
	Type       string         `json:"type" doc:"Account type"`
	Amount     string         `json:"amount" doc:"Sum of balances"`
	Count      int            `json:"count" doc:"Number of accounts"`
	Percentage string         `json:"percentage" doc:"Share of total assets, two decimal places"`
	Accounts   []AssetAccount `json:"accounts" doc:"Accounts in this group"`
}

// AssetsResponse is the asset distribution across account types.
type AssetsResponse struct {
	Total  string       `json:"total" doc:"Sum of all balances"`
	Groups []AssetGroup `json:"groups" doc:"Groups ordered by amount, largest first"`
}

// AssetsOutput is the Huma output for the asset distribution.
type AssetsOutput struct {
	Body AssetsResponse
}

// SpendingCategory is one slice of the recorded spending breakdown.
type SpendingCategory struct {
	Name       string `json:"name" doc:"Category label"`
	Amount     string `json:"amount" doc:"Absolute decimal total"`
	Percentage int64  `json:"percentage" doc:"Whole-number share of total spending"`
}

// CategoriesResponse is the recorded expense breakdown.
type CategoriesResponse struct {
	Categories []SpendingCategory `json:"categories" doc:"Categories in first-seen order"`
}

// CategoriesOutput is the Huma output for the category breakdown.
type CategoriesOutput struct {
	Body CategoriesResponse
}

type summaryReader interface {
	Assets(ctx context.Context) (summary.AssetDistribution, error)
	Categories(ctx context.Context) ([]summary.CategoryShare, error)
}

// Handler serves the summary endpoints.
type Handler struct {
	SummaryService summaryReader
}

func NewHandler(svc summaryReader) *Handler {
	return &Handler{SummaryService: svc}
}

// Register registers both summary endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summary-assets",
		Method:      http.MethodGet,
		Path:        "/v1/summary/assets",
		Summary:     "Asset distribution",
		Description: "Groups every account balance by account type.",
		Tags:        []string{"Summary"},
	}, h.assets)

	huma.Register(api, huma.Operation{
		OperationID: "summary-categories",
		Method:      http.MethodGet,
		Path:        "/v1/summary/categories",
		Summary:     "Spending by category",
		Description: "Breaks down recorded expenses by category.",
		Tags:        []string{"Summary"},
	}, h.categories)
}

func (h *Handler) assets(ctx context.Context, _ *struct{}) (*AssetsOutput, error) {
	dist, err := h.SummaryService.Assets(ctx)
	if err != nil {
		return nil, handlers.Error("failed to load assets", err)
	}

	resp := AssetsResponse{
		Total:  dist.Total.String(),
		Groups: make([]AssetGroup, len(dist.Groups)),
	}
	for i, group := range dist.Groups {
		accounts := make([]AssetAccount, len(group.Accounts))
		for j, acc := range group.Accounts {
			accounts[j] = AssetAccount{
				Name:       acc.Name,
				Balance:    acc.Balance.String(),
				Percentage: acc.Percentage.StringFixed(2),
			}
		}
		resp.Groups[i] = AssetGroup{
			Type:       group.Type,
			Amount:     group.Amount.String(),
			Count:      group.Count,
			Percentage: group.Percentage.StringFixed(2),
			Accounts:   accounts,
		}
	}
	return &AssetsOutput{Body: resp}, nil
}

func (h *Handler) categories(ctx context.Context, _ *struct{}) (*CategoriesOutput, error) {
	shares, err := h.SummaryService.Categories(ctx)
	if err != nil {
		return nil, handlers.Error("failed to load categories", err)
	}

	resp := CategoriesResponse{Categories: make([]SpendingCategory, len(shares))}
	for i, share := range shares {
		resp.Categories[i] = SpendingCategory{
			Name:       share.Name,
			Amount:     share.Amount.String(),
			Percentage: share.Percentage,
		}
	}
	return &CategoriesOutput{Body: resp}, nil
}

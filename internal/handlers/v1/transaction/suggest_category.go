package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
)

// SuggestCategoryInput is the Huma input for a category suggestion.
type SuggestCategoryInput struct {
	Name string `query:"name" doc:"Transaction name typed so far"`
	Type string `query:"type" enum:"income,expense,transfer" default:"expense" doc:"Transaction type"`
}

// SuggestCategoryResponse is the suggested category and the labels on offer.
type SuggestCategoryResponse struct {
	Category   string   `json:"category" doc:"Suggested category"`
	Matched    bool     `json:"matched" doc:"False when the default label was returned"`
	Categories []string `json:"categories" doc:"Categories available for the type"`
}

// SuggestCategoryOutput is the Huma output for a category suggestion.
type SuggestCategoryOutput struct {
	Body SuggestCategoryResponse
}

type categorySuggester interface {
	SuggestCategory(name string, kind ledger.TransactionType) (string, bool)
	Categories(kind ledger.TransactionType) []string
}

// SuggestCategoryHandler handles GET /v1/transaction/suggest-category.
type SuggestCategoryHandler struct {
	TransactionService categorySuggester
}

func NewSuggestCategoryHandler(svc categorySuggester) *SuggestCategoryHandler {
	return &SuggestCategoryHandler{TransactionService: svc}
}

func (h *SuggestCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "suggest-category",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/suggest-category",
		Summary:     "Suggest a category",
		Description: "Suggests a category for a manual entry from its name.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SuggestCategoryHandler) handle(_ context.Context, input *SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	kind, err := ledger.ParseTransactionType(input.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	category, matched := h.TransactionService.SuggestCategory(input.Name, kind)
	categories := h.TransactionService.Categories(kind)
	if categories == nil {
		categories = []string{}
	}
	return &SuggestCategoryOutput{Body: SuggestCategoryResponse{
		Category:   category,
		Matched:    matched,
		Categories: categories,
	}}, nil
}

package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/summary"
)

type mockSummaryReader struct {
	mock.Mock
}

func (m *mockSummaryReader) Assets(ctx context.Context) (summary.AssetDistribution, error) {
	args := m.Called(ctx)
	dist, _ := args.Get(0).(summary.AssetDistribution)
	return dist, args.Error(1)
}

func (m *mockSummaryReader) Categories(ctx context.Context) ([]summary.CategoryShare, error) {
	args := m.Called(ctx)
	shares, _ := args.Get(0).([]summary.CategoryShare)
	return shares, args.Error(1)
}

func newTestAPI(t *testing.T, svc summaryReader) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_Assets(t *testing.T) {
	svc := new(mockSummaryReader)
	svc.On("Assets", mock.Anything).Return(summary.DistributeAssets([]summary.Holding{
		{Name: "HDFC", Type: "bank", Balance: decimal.NewFromInt(750)},
		{Name: "Wallet", Type: "cash", Balance: decimal.NewFromInt(250)},
	}), nil)

	api := newTestAPI(t, svc)
	resp := api.Get("/v1/summary/assets")

	require.Equal(t, http.StatusOK, resp.Code)
	var body AssetsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "1000", body.Total)
	require.Len(t, body.Groups, 2)
	assert.Equal(t, "bank", body.Groups[0].Type)
	assert.Equal(t, "75.00", body.Groups[0].Percentage)
	assert.Equal(t, "Wallet", body.Groups[1].Accounts[0].Name)
}

func TestHTTP_Assets_Error(t *testing.T) {
	svc := new(mockSummaryReader)
	svc.On("Assets", mock.Anything).Return(nil, errors.New("db down"))

	api := newTestAPI(t, svc)
	resp := api.Get("/v1/summary/assets")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_Categories(t *testing.T) {
	svc := new(mockSummaryReader)
	svc.On("Categories", mock.Anything).Return([]summary.CategoryShare{
		{Name: "Food", Amount: decimal.NewFromInt(30), Percentage: 75},
		{Name: "Rent", Amount: decimal.NewFromInt(10), Percentage: 25},
	}, nil)

	api := newTestAPI(t, svc)
	resp := api.Get("/v1/summary/categories")

	require.Equal(t, http.StatusOK, resp.Code)
	var body CategoriesResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Categories, 2)
	assert.Equal(t, "Food", body.Categories[0].Name)
	assert.Equal(t, int64(75), body.Categories[0].Percentage)
}

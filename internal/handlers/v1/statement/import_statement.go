package statement

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/handlers"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/logging"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/service"
)

// ImportStatementInput carries the uploaded file and the account to book it to.
type ImportStatementInput struct {
	FileName string `query:"fileName" required:"true" doc:"Original file name; the extension selects the parser"`
	Account  string `query:"account" required:"true" minLength:"1" doc:"Name of an existing account"`
	RawBody  []byte
}

// ImportResponse is the preview plus the stored transaction IDs.
type ImportResponse struct {
	PreviewResponse
	Account        string   `json:"account" doc:"Account the rows were booked to"`
	TransactionIDs []string `json:"transactionIDs" doc:"Stored transaction UUIDs in file order"`
	Net            string   `json:"net" doc:"Balance change applied to the account"`
}

// ImportStatementOutput is the Huma output for a statement import.
type ImportStatementOutput struct {
	Status int
	Body   ImportResponse
}

type statementImporter interface {
	Commit(ctx context.Context, r io.Reader, fileName, accountName string) (*service.ImportCommit, error)
}

// ImportStatementHandler handles POST /v1/statement/import.
type ImportStatementHandler struct {
	ImportService statementImporter
	MaxBytes      int64
}

func NewImportStatementHandler(svc statementImporter, maxBytes int64) *ImportStatementHandler {
	return &ImportStatementHandler{ImportService: svc, MaxBytes: maxBytes}
}

// Register registers the import endpoint with the Huma API.
func (h *ImportStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "import-statement",
		Method:       http.MethodPost,
		Path:         "/v1/statement/import",
		Summary:      "Import a statement",
		Description:  "Parses a statement and stores every row against one account. Either all rows are stored or none.",
		Tags:         []string{"Statements"},
		MaxBodyBytes: h.MaxBytes,
	}, h.handle)
}

func (h *ImportStatementHandler) handle(ctx context.Context, input *ImportStatementInput) (*ImportStatementOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("fileName", input.FileName)
		logData.AddData("account", input.Account)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("importStatementMs")
	}
	committed, err := h.ImportService.Commit(ctx, bytes.NewReader(input.RawBody), input.FileName, input.Account)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.Error("failed to import statement", err)
	}

	ids := make([]string, len(committed.IDs))
	for i, id := range committed.IDs {
		ids[i] = id.String()
	}
	if logData != nil {
		logData.AddData("rowCount", len(ids))
	}

	return &ImportStatementOutput{
		Status: http.StatusCreated,
		Body: ImportResponse{
			PreviewResponse: toPreviewResponse(&committed.ImportPreview),
			Account:         committed.Account,
			TransactionIDs:  ids,
			Net:             committed.Net.String(),
		},
	}, nil
}

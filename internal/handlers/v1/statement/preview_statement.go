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

// PreviewStatementInput carries the uploaded file as the raw request body.
type PreviewStatementInput struct {
	FileName string `query:"fileName" required:"true" doc:"Original file name; the extension selects the parser"`
	RawBody  []byte
}

// PreviewStatementOutput is the Huma output for a statement preview.
type PreviewStatementOutput struct {
	Body PreviewResponse
}

type statementPreviewer interface {
	Preview(ctx context.Context, r io.Reader, fileName string) (*service.ImportPreview, error)
}

// PreviewStatementHandler handles POST /v1/statement/preview.
type PreviewStatementHandler struct {
	ImportService statementPreviewer
	MaxBytes      int64
}

// NewPreviewStatementHandler creates a new PreviewStatementHandler. Request
// bodies above maxBytes are rejected.
func NewPreviewStatementHandler(svc statementPreviewer, maxBytes int64) *PreviewStatementHandler {
	return &PreviewStatementHandler{ImportService: svc, MaxBytes: maxBytes}
}

// Register registers the preview endpoint with the Huma API.
func (h *PreviewStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "preview-statement",
		Method:       http.MethodPost,
		Path:         "/v1/statement/preview",
		Summary:      "Preview a statement",
		Description:  "Parses a CSV or spreadsheet export and returns categorized rows, totals, and insights without storing anything.",
		Tags:         []string{"Statements"},
		MaxBodyBytes: h.MaxBytes,
	}, h.handle)
}

func (h *PreviewStatementHandler) handle(ctx context.Context, input *PreviewStatementInput) (*PreviewStatementOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("fileName", input.FileName)
		logData.AddData("fileBytes", len(input.RawBody))
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("previewStatementMs")
	}
	preview, err := h.ImportService.Preview(ctx, bytes.NewReader(input.RawBody), input.FileName)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.Error("failed to parse statement", err)
	}

	if logData != nil {
		logData.AddData("rowCount", len(preview.Result.Transactions))
	}
	return &PreviewStatementOutput{Body: toPreviewResponse(preview)}, nil
}

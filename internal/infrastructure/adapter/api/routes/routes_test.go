package routes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/usecase/dedup"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/usecase/ingest"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/parser"
)

var alipayExport = strings.Join([]string{
	"------------------------------------------------------------------------------------",
	"导出信息：",
	"------------------------支付宝（中国）网络技术有限公司  电子客户回单------------------------",
	"交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态,交易订单号,商家订单号,备注,",
	"2024-01-15 08:10:00,餐饮美食,Luckin Coffee,/,生椰拿铁,支出,19.90,招商银行储蓄卡(1234),交易成功,2024011522001100001\t,,,",
	"2024-01-15 12:30:00,餐饮美食,美团,/,外卖,支出,25.00,招商银行储蓄卡(1234),交易成功,2024011522001100002\t,,,",
	"2024-01-15 19:45:00,交通出行,滴滴出行,/,快车,支出,31.20,招商银行储蓄卡(1234),交易成功,2024011522001100003\t,,,",
}, "\n")

const maxFileBytes = 1 << 20

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	tdb := database.NewTestDBManager(t, log, nil)
	loc := tdb.TimeProvider.Location()
	uow := tdb.UnitOfWork()

	deduplicator := dedup.NewDeduplicator(uow, tdb.TimeProvider, log, dedup.Config{PreferredSource: entity.SourceAlipay})
	service := ingest.NewIngestService(uow, parser.NewDefaultRegistry(loc), deduplicator, tdb.TimeProvider, log,
		ingest.Limits{MaxFileBytes: maxFileBytes})

	router := gin.New()
	routes.SetupMiddlewares(router, log, tdb.TimeProvider)
	routes.SetupRoutes(router, routes.Handlers{
		Import:      handler.NewImportHandler(service, log, maxFileBytes),
		Batch:       handler.NewBatchHandler(service, log, loc),
		Transaction: handler.NewTransactionHandler(service, log, loc),
		Dedup:       handler.NewDedupHandler(deduplicator, log, loc),
		Health:      handler.NewHealthHandler(tdb.Manager),
	})
	return router
}

func upload(t *testing.T, router *gin.Engine, path, fileName string, content []byte, source string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if source != "" {
		require.NoError(t, w.WriteField("source", source))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func cmbCommit(source string, amount string) dto.CommitRequest {
	return dto.CommitRequest{
		FileName: "cmb_202401.pdf",
		FileSize: 2048,
		Source:   "cmb",
		Drafts: []dto.DraftDTO{{
			OccurredAt:   "2024-01-15T00:00:00+08:00",
			Amount:       amount,
			Direction:    "out",
			Currency:     "CNY",
			Counterparty: "美团",
			Source:       source,
			SourceRowID:  "cmb-20240115-1",
		}},
	}
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	health := decode[dto.HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, database.DriverSQLite, health.Driver)
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(middleware.RequestIDHeader))

	rec = doJSON(router, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestImportFlow(t *testing.T) {
	router := setupRouter(t)

	t.Run("Preview persists nothing", func(t *testing.T) {
		rec := upload(t, router, "/imports/preview", "alipay.csv", []byte(alipayExport), "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		preview := decode[dto.ParseResponse](t, rec)
		assert.Equal(t, "alipay", preview.Source)
		assert.Equal(t, "csv", preview.SourceType)
		assert.Len(t, preview.Drafts, 3)
		assert.Empty(t, preview.Warnings)
		assert.Equal(t, "25.00", preview.Drafts[1].Amount)

		batches := decode[dto.BatchListResponse](t, doJSON(router, http.MethodGet, "/batches", nil))
		assert.Zero(t, batches.Count)
	})

	var batchID string
	t.Run("Import commits and is idempotent", func(t *testing.T) {
		rec := upload(t, router, "/imports", "alipay.csv", []byte(alipayExport), "alipay")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		first := decode[dto.ImportResponse](t, rec)
		assert.Equal(t, 3, first.RowCount)
		assert.Zero(t, first.SkippedCount)
		require.NotEmpty(t, first.BatchID)
		batchID = first.BatchID

		rec = upload(t, router, "/imports", "alipay.csv", []byte(alipayExport), "alipay")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		again := decode[dto.ImportResponse](t, rec)
		assert.Zero(t, again.RowCount)
		assert.Equal(t, 3, again.SkippedCount)
		assert.Empty(t, again.BatchID)
	})

	t.Run("Commit of a bank row marks it as a duplicate", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/imports/commit", cmbCommit("cmb", "25.00"))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		committed := decode[dto.CommitResponse](t, rec)
		assert.Equal(t, 1, committed.RowCount)
		assert.Equal(t, 1, committed.ProcessedGroups)
	})

	t.Run("Listing hides duplicates unless asked", func(t *testing.T) {
		visible := decode[dto.TransactionListResponse](t,
			doJSON(router, http.MethodGet, "/transactions?start=2024-01-15&end=2024-01-15", nil))
		assert.Equal(t, 3, visible.Count)

		all := decode[dto.TransactionListResponse](t,
			doJSON(router, http.MethodGet, "/transactions?start=2024-01-15&end=2024-01-15&includeDuplicates=true", nil))
		require.Equal(t, 4, all.Count)

		var duplicates int
		for _, row := range all.Transactions {
			if row.IsDuplicate {
				duplicates++
				assert.Equal(t, "cmb", row.Source)
				assert.NotNil(t, row.PrimaryTransactionID)
			}
		}
		assert.Equal(t, 1, duplicates)

		bySource := decode[dto.TransactionListResponse](t,
			doJSON(router, http.MethodGet, "/transactions?source=cmb&includeDuplicates=true", nil))
		assert.Equal(t, 1, bySource.Count)
	})

	t.Run("Standalone dedup re-derives the same group", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/dedup", dto.DedupRequest{
			StartDate: ptr("2024-01-15"),
			EndDate:   ptr("2024-01-15"),
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		result := decode[dto.DedupResponse](t, rec)
		assert.Equal(t, 4, result.CandidateCount)
		assert.Equal(t, 1, result.ProcessedGroups)

		rec = doJSON(router, http.MethodPost, "/dedup", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("Batches can be read and deleted", func(t *testing.T) {
		batches := decode[dto.BatchListResponse](t, doJSON(router, http.MethodGet, "/batches", nil))
		assert.Equal(t, 2, batches.Count)

		rec := doJSON(router, http.MethodGet, "/batches/"+batchID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		batch := decode[dto.BatchResponse](t, rec)
		assert.Equal(t, 3, batch.RowCount)
		assert.Equal(t, "alipay", batch.Source)

		rec = doJSON(router, http.MethodDelete, "/batches/"+batchID, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		deletion := decode[dto.BatchDeletionResponse](t, rec)
		assert.Equal(t, int64(3), deletion.DeletedRows)
		assert.Equal(t, 1, deletion.ClearedGroups)

		visible := decode[dto.TransactionListResponse](t, doJSON(router, http.MethodGet, "/transactions", nil))
		require.Equal(t, 1, visible.Count)
		assert.False(t, visible.Transactions[0].IsDuplicate)
	})
}

func TestErrorResponses(t *testing.T) {
	router := setupRouter(t)

	t.Run("Undecodable amount is itemized", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/imports/commit", cmbCommit("cmb", "twenty"))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decode[dto.ErrorResponse](t, rec)
		assert.Equal(t, domainerr.CodeValidationFailed, resp.Code)
		require.Len(t, resp.Issues, 1)
		assert.Equal(t, "amount", resp.Issues[0].Field)
		assert.NotEmpty(t, resp.TraceID)
	})

	t.Run("Server-side validation rejects three decimals", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/imports/commit", cmbCommit("cmb", "25.005"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerr.CodeValidationFailed, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Spoofed draft source", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/imports/commit", cmbCommit("wechat", "25.00"))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, domainerr.CodeSourceMismatch, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Missing file field", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/imports", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Oversized upload", func(t *testing.T) {
		rec := upload(t, router, "/imports", "big.csv", bytes.Repeat([]byte("a"), maxFileBytes+1), "")
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, domainerr.CodeFileTooLarge, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Unknown batch", func(t *testing.T) {
		rec := doJSON(router, http.MethodDelete, "/batches/missing", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerr.CodeNotFound, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Inverted range", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/transactions?start=2024-01-16&end=2024-01-14", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerr.CodeInvalidDateRange, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Unknown source filter", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/transactions?source=paypal", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerr.CodeUnsupportedSource, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Bad page size", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/batches?limit=0", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/imports", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func ptr[T any](v T) *T { return &v }

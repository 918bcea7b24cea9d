package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubIngestService struct {
	earned float64
	err    error
}

func (s *stubIngestService) LogStream(ctx context.Context, req *domain.StreamEventRequest) (float64, error) {
	if req.VideoID == "" || req.Provider == "" {
		return 0, domain.NewValidationError("videoId")
	}
	return s.earned, s.err
}

func (s *stubIngestService) LogDownload(ctx context.Context, req *domain.DownloadEventRequest) error {
	if req.VideoID == "" {
		return domain.NewValidationError("videoId")
	}
	return s.err
}

func (s *stubIngestService) LogView(ctx context.Context, req *domain.ViewEventRequest) error {
	if req.VideoID == "" || req.Provider == "" {
		return domain.NewValidationError("videoId")
	}
	return s.err
}

type stubWithdrawalService struct {
	sendErr     error
	withdrawErr error
}

func (s *stubWithdrawalService) SendVerificationCode(ctx context.Context, identifier, code string) error {
	if identifier == "" || code == "" {
		return domain.NewValidationError("identifier")
	}
	return s.sendErr
}

func (s *stubWithdrawalService) RequestWithdrawal(ctx context.Context, req *domain.WithdrawalRequest) error {
	if req.Identifier == "" {
		return domain.NewValidationError("identifier")
	}
	return s.withdrawErr
}

type stubAnalyticsService struct {
	summary   *domain.SummaryReport
	breakdown map[string]*domain.ProviderReport
	balances  map[string]float64
}

func (s *stubAnalyticsService) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	return s.summary, nil
}

func (s *stubAnalyticsService) ProviderBreakdown(ctx context.Context) (map[string]*domain.ProviderReport, error) {
	return s.breakdown, nil
}

func (s *stubAnalyticsService) ProviderBalance(ctx context.Context, provider string) (float64, error) {
	return s.balances[provider], nil
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLogStreamEndpoint(t *testing.T) {
	router := gin.New()
	handler := NewEventHandler(&stubIngestService{earned: 198.0})
	router.POST("/events/stream", handler.LogStream)

	w := postJSON(t, router, "/events/stream", map[string]any{
		"videoId":  "vid-1",
		"provider": "MTN",
		"seconds":  100,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Stream logged", body["message"])
	require.InDelta(t, 198.0, body["earnedAmount"].(float64), 1e-9)
}

func TestLogStreamMissingParameters(t *testing.T) {
	router := gin.New()
	handler := NewEventHandler(&stubIngestService{})
	router.POST("/events/stream", handler.LogStream)

	w := postJSON(t, router, "/events/stream", map[string]any{"seconds": 100})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing parameters", decodeBody(t, w)["error"])
}

func TestLogStreamMalformedBody(t *testing.T) {
	router := gin.New()
	handler := NewEventHandler(&stubIngestService{})
	router.POST("/events/stream", handler.LogStream)

	req := httptest.NewRequest(http.MethodPost, "/events/stream", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogDownloadEndpoint(t *testing.T) {
	router := gin.New()
	handler := NewEventHandler(&stubIngestService{})
	router.POST("/events/download", handler.LogDownload)

	w := postJSON(t, router, "/events/download", map[string]any{"videoId": "vid-1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Download logged", decodeBody(t, w)["message"])

	w = postJSON(t, router, "/events/download", map[string]any{"provider": "MTN"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing videoId", decodeBody(t, w)["error"])
}

func TestLogViewEndpoint(t *testing.T) {
	router := gin.New()
	handler := NewEventHandler(&stubIngestService{})
	router.POST("/events/view", handler.LogView)

	w := postJSON(t, router, "/events/view", map[string]any{"videoId": "vid-1", "provider": "Glo"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "View logged", decodeBody(t, w)["message"])
}

func TestRequestWithdrawalInvalidCode(t *testing.T) {
	router := gin.New()
	handler := NewWithdrawalHandler(&stubWithdrawalService{withdrawErr: domain.ErrInvalidCode})
	router.POST("/withdrawals", handler.RequestWithdrawal)

	w := postJSON(t, router, "/withdrawals", map[string]any{
		"identifier": "user@example.com",
		"code":       "0000",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Invalid or expired verification code.", body["message"])
}

func TestRequestWithdrawalSuccess(t *testing.T) {
	router := gin.New()
	handler := NewWithdrawalHandler(&stubWithdrawalService{})
	router.POST("/withdrawals", handler.RequestWithdrawal)

	w := postJSON(t, router, "/withdrawals", map[string]any{
		"identifier": "user@example.com",
		"code":       "4821",
		"amount":     5000,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Withdrawal email sent successfully!", decodeBody(t, w)["message"])
}

func TestSendVerificationCodeEndpoint(t *testing.T) {
	router := gin.New()
	handler := NewWithdrawalHandler(&stubWithdrawalService{})
	router.POST("/verification-codes", handler.SendVerificationCode)

	w := postJSON(t, router, "/verification-codes", map[string]any{
		"identifier": "user@example.com",
		"code":       "4821",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Verification email sent", decodeBody(t, w)["message"])

	w = postJSON(t, router, "/verification-codes", map[string]any{"identifier": "user@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Email and code required", decodeBody(t, w)["message"])
}

func TestProviderBalanceEndpoint(t *testing.T) {
	router := gin.New()
	handler := NewAnalyticsHandler(&stubAnalyticsService{balances: map[string]float64{"MTN": 321.5}})
	router.GET("/providers/:provider/balance", handler.ProviderBalance)

	req := httptest.NewRequest(http.MethodGet, "/providers/MTN/balance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, "MTN", body["provider"])
	require.InDelta(t, 321.5, body["balance"].(float64), 1e-9)

	req = httptest.NewRequest(http.MethodGet, "/providers/Unknown/balance", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Zero(t, decodeBody(t, w)["balance"].(float64))
}

func TestSummaryEndpoint(t *testing.T) {
	router := gin.New()
	handler := NewAnalyticsHandler(&stubAnalyticsService{
		summary: &domain.SummaryReport{Views: 10, Streams: 4, Downloads: 2, Earnings: 720.5},
	})
	router.GET("/summary", handler.Summary)

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var report domain.SummaryReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Equal(t, int64(10), report.Views)
	require.InDelta(t, 720.5, report.Earnings, 1e-9)
}

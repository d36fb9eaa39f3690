package transform

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamai/server/internal/cooldown"
	"github.com/glamai/server/internal/errors"
	"github.com/glamai/server/internal/gemini"
	"github.com/glamai/server/internal/pipeline"
	"github.com/glamai/server/internal/usage"
)

type stubInvoker struct {
	resp  *gemini.GenerateContentResponse
	err   error
	calls int
}

func (s *stubInvoker) GenerateImage(context.Context, string, []byte, string) (*gemini.GenerateContentResponse, error) {
	s.calls++
	return s.resp, s.err
}

func imageResponse(payload []byte) *gemini.GenerateContentResponse {
	return &gemini.GenerateContentResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{
				{InlineData: &gemini.Blob{
					MIMEType: "image/png",
					Data:     base64.StdEncoding.EncodeToString(payload),
				}},
			}}},
		},
	}
}

type testEnv struct {
	router  *gin.Engine
	store   usage.Store
	tracker *cooldown.Tracker
}

func setupRouter(t *testing.T, invoker pipeline.Invoker) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := usage.NewMemoryStore()
	governor, err := usage.NewGovernor(nil, nil)
	require.NoError(t, err)

	tracker := cooldown.NewTrackerWithInterval(time.Hour)
	t.Cleanup(tracker.Stop)

	p := pipeline.NewPipeline(invoker, store, pipeline.Config{})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	router.POST("/transform", TransformHandler(p, store, governor, tracker))
	router.POST("/transform/recolor", RecolorHandler(p))

	return &testEnv{router: router, store: store, tracker: tracker}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func transformBody() Request {
	return Request{
		Image:    base64.StdEncoding.EncodeToString([]byte("photo")),
		MIMEType: "image/jpeg",
		Style:    "Pixie Cut",
		Audience: "woman",
	}
}

func TestTransformHandler_Success(t *testing.T) {
	env := setupRouter(t, &stubInvoker{resp: imageResponse([]byte("styled"))})

	w := postJSON(t, env.router, "/transform", transformBody())

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SUCCESS", resp.Status)
	assert.Equal(t, 1, resp.DailyCount)

	decoded, err := base64.StdEncoding.DecodeString(resp.Image)
	require.NoError(t, err)
	assert.Equal(t, []byte("styled"), decoded)
}

func TestTransformHandler_CooldownDeniedWithRemainingSeconds(t *testing.T) {
	env := setupRouter(t, &stubInvoker{resp: imageResponse([]byte("styled"))})

	// six prior successes put the user into the 15s phase
	now := time.Now()
	for i := 0; i < 6; i++ {
		require.NoError(t, env.store.RecordSuccess(context.Background(), "user-1", now))
	}

	w := postJSON(t, env.router, "/transform", transformBody())

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var denial DenialResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &denial))
	assert.Equal(t, errors.CodeCooldownActive, denial.Error)
	assert.Greater(t, denial.RemainingSeconds, 0)
	assert.LessOrEqual(t, denial.RemainingSeconds, 15)
	assert.Nil(t, denial.Care)

	// the denial arms the live countdown
	assert.True(t, env.tracker.Active("user-1"))
}

func TestTransformHandler_LiveCountdownRefusesRetry(t *testing.T) {
	invoker := &stubInvoker{resp: imageResponse([]byte("styled"))}
	env := setupRouter(t, invoker)

	// five prior successes so the next one lands in the 15s phase
	now := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, env.store.RecordSuccess(context.Background(), "user-1", now))
	}

	w := postJSON(t, env.router, "/transform", transformBody())
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.tracker.Active("user-1"), "success arms the countdown for the new phase")

	// the armed countdown refuses the retry without reaching the provider
	w = postJSON(t, env.router, "/transform", transformBody())

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 1, invoker.calls)

	var denial DenialResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &denial))
	assert.Equal(t, errors.CodeCooldownActive, denial.Error)
	assert.Greater(t, denial.RemainingSeconds, 0)
}

func TestTransformHandler_DailyLimitDeniedWithCareReport(t *testing.T) {
	env := setupRouter(t, &stubInvoker{resp: imageResponse([]byte("styled"))})

	now := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		require.NoError(t, env.store.RecordSuccess(context.Background(), "user-1", now))
	}

	w := postJSON(t, env.router, "/transform", transformBody())

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var denial DenialResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &denial))
	assert.Equal(t, errors.CodeDailyLimitReached, denial.Error)
	assert.Zero(t, denial.RemainingSeconds)
	require.NotNil(t, denial.Care)
	assert.NotEmpty(t, denial.Care.Resource)
}

func TestTransformHandler_NoUsableOutputStillCountsAttempt(t *testing.T) {
	textOnly := &gemini.GenerateContentResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: "no can do"}}}},
		},
	}
	env := setupRouter(t, &stubInvoker{resp: textOnly})

	w := postJSON(t, env.router, "/transform", transformBody())

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	record, err := env.store.Read(context.Background(), "user-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, record.DailyCount)
}

func TestTransformHandler_ProviderOutageDoesNotCount(t *testing.T) {
	env := setupRouter(t, &stubInvoker{err: &gemini.APIError{StatusCode: http.StatusServiceUnavailable}})

	w := postJSON(t, env.router, "/transform", transformBody())

	require.Equal(t, http.StatusBadGateway, w.Code)

	record, err := env.store.Read(context.Background(), "user-1", time.Now())
	require.NoError(t, err)
	assert.Zero(t, record.DailyCount)
}

func TestTransformHandler_RejectsUnknownStyle(t *testing.T) {
	env := setupRouter(t, &stubInvoker{resp: imageResponse([]byte("styled"))})

	body := transformBody()
	body.Style = "Mullet"

	w := postJSON(t, env.router, "/transform", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	record, err := env.store.Read(context.Background(), "user-1", time.Now())
	require.NoError(t, err)
	assert.Zero(t, record.DailyCount)
}

func TestTransformHandler_RejectsMissingStyle(t *testing.T) {
	env := setupRouter(t, &stubInvoker{resp: imageResponse([]byte("styled"))})

	body := transformBody()
	body.Style = ""

	w := postJSON(t, env.router, "/transform", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecolorHandler_DoesNotTouchUsage(t *testing.T) {
	env := setupRouter(t, &stubInvoker{resp: imageResponse([]byte("recolored"))})

	w := postJSON(t, env.router, "/transform/recolor", RecolorRequest{
		Image:    base64.StdEncoding.EncodeToString([]byte("look")),
		MIMEType: "image/png",
		Color:    "Auburn Red",
	})

	require.Equal(t, http.StatusOK, w.Code)

	record, err := env.store.Read(context.Background(), "user-1", time.Now())
	require.NoError(t, err)
	assert.Zero(t, record.DailyCount)
}

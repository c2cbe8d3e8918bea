package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiddy-universe/web-api/services/chat"
	"github.com/kiddy-universe/web-api/services/openai"
)

type recordingResponder struct {
	last *chat.Request
	res  *chat.Response
	err  error
}

func (m *recordingResponder) Respond(_ context.Context, r *chat.Request) (*chat.Response, error) {
	m.last = r
	return m.res, m.err
}

func perform(responder chat.Responder, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHandler(r, responder)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body)))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) *Response {
	t.Helper()
	var res Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return &res
}

func TestChat_MessageRequired(t *testing.T) {
	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`, `oops`} {
		w := perform(chat.NewMock(), body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"ok":false,"error":"Message is required"}`, w.Body.String(), body)
	}
}

func TestChat_BindsRequest(t *testing.T) {
	m := &recordingResponder{res: &chat.Response{Text: "t", Model: chat.ModelMock}}
	w := perform(m, `{"message":"  hi  ","mode":" story ","grade":"3","subject":" math ","model":" gpt-4o ","images":["a","b",3]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, &chat.Request{
		Message: "hi",
		Mode:    chat.ModeStory,
		Grade:   3,
		Subject: "math",
		Model:   "gpt-4o",
		Images:  []string{"a", "b"},
	}, m.last)
}

func TestChat_Defaults(t *testing.T) {
	m := &recordingResponder{res: &chat.Response{Text: "t", Model: chat.ModelMock}}
	w := perform(m, `{"message":"hi","grade":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, chat.ModeChat, m.last.Mode)
	assert.Equal(t, 5, m.last.Grade)
	assert.Equal(t, "general", m.last.Subject)
	assert.Empty(t, m.last.Model)
	assert.Nil(t, m.last.Images)
}

func TestChat_MockOnly(t *testing.T) {
	w := perform(chat.NewFallback(nil, chat.NewMock()), `{"message":"Why do stars twinkle?","mode":"unknown","grade":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.True(t, res.OK)
	assert.Equal(t, chat.ModelMock, res.Response.Model)
	assert.Empty(t, res.Response.UsedModel)
	assert.NotContains(t, w.Body.String(), "used_model")
	assert.True(t, strings.HasPrefix(res.Response.Text, "Awesome thought! For Grade 2, here’s a helpful tip:"))
}

func TestChat_AIFailureDegradesToMock(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	api := openai.NewApi(server.Client(), server.URL, "bad", "", time.Second)
	w := perform(chat.NewFallback(chat.NewAI(api), chat.NewMock()), `{"message":"hi","mode":"explain"}`)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, chat.ModelMock, res.Response.Model)
	assert.Equal(t, int32(1), calls.Load())
	assert.NotContains(t, w.Body.String(), "invalid api key")
}

func TestChat_AISuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"\n Stars twinkle because of air! \n"}}]}`))
	}))
	defer server.Close()

	api := openai.NewApi(server.Client(), server.URL, "k", "gpt-4o-mini", time.Second)
	w := perform(chat.NewFallback(chat.NewAI(api), chat.NewMock()), `{"message":"Why do stars twinkle?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"response":{"text":"Stars twinkle because of air!","model":"openai","used_model":"gpt-4o-mini"}}`, w.Body.String())
}

func TestChat_ResponderFailure(t *testing.T) {
	w := perform(&recordingResponder{err: errors.New("misconfigured")}, `{"message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Chat failed"}`, w.Body.String())
}

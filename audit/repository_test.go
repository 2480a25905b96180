package audit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeElasticsearch(t *testing.T, handler http.HandlerFunc) *ElasticsearchRepository {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	repo, err := NewElasticsearchRepository(srv.URL, "audit-test")
	require.NoError(t, err)
	return repo
}

func TestLogAccessIndexesDocument(t *testing.T) {
	var gotPath string
	var gotBody AuditLog
	repo := newFakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	})

	entry := AuditLog{ID: "a1", Action: ActionLogin, UserID: "u1", Success: true, Timestamp: time.Now().UTC()}
	require.NoError(t, repo.LogAccess(context.Background(), entry))
	assert.Equal(t, "/audit-test/_doc/a1", gotPath)
	assert.Equal(t, ActionLogin, gotBody.Action)
	assert.Equal(t, "u1", gotBody.UserID)
}

func TestLogAccessReportsServerError(t *testing.T) {
	repo := newFakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"bad"}`)
	})
	assert.Error(t, repo.LogAccess(context.Background(), AuditLog{ID: "a1"}))
}

func TestQueryLogsParsesHits(t *testing.T) {
	var body string
	repo := newFakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_, _ = io.WriteString(w, `{"hits":{"hits":[
			{"_source":{"id":"a2","action":"CREATE_POST","user_id":"u1","resource_id":"p1","success":true}},
			{"_source":{"id":"a1","action":"LOGIN","user_id":"u1","success":false,"reason":"password_mismatch"}}
		]}}`)
	})

	logs, err := repo.QueryLogs(context.Background(), Query{
		From:   time.Now().Add(-time.Hour),
		To:     time.Now(),
		UserID: "u1",
	})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, ActionCreatePost, logs[0].Action)
	assert.Equal(t, "password_mismatch", logs[1].Reason)
	assert.True(t, strings.Contains(body, `"user_id":"u1"`))
	assert.False(t, strings.Contains(body, "resource_id"))
}

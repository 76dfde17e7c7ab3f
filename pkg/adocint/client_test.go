package adocint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, pollsUntilDone int32, final AnalyzeOperation) *httptest.Server {
	t.Helper()
	var polls int32
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Ocp-Apim-Subscription-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodPost:
			w.Header().Set("Operation-Location", server.URL+"/operations/42")
			w.WriteHeader(http.StatusAccepted)
		case http.MethodGet:
			var op AnalyzeOperation
			if atomic.AddInt32(&polls, 1) <= pollsUntilDone {
				op = AnalyzeOperation{Status: StatusRunning}
			} else {
				op = final
			}
			json.NewEncoder(w).Encode(op)
		}
	}))
	return server
}

func TestAnalyzeDocumentPollsToCompletion(t *testing.T) {
	result := &AnalyzeResult{
		ModelID: "prebuilt-read",
		Content: "Hello World",
		Pages:   []Page{{PageNumber: 1}},
	}
	server := newTestServer(t, 2, AnalyzeOperation{Status: StatusSucceeded, AnalyzeResult: result})
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", WithPollInterval(time.Millisecond))
	require.NoError(t, err)

	got, err := client.AnalyzeDocument(context.Background(), "prebuilt-read", []byte("%PDF-"), FeatureStyleFont, FeatureLanguages)
	require.NoError(t, err)
	assert.Equal(t, "prebuilt-read", got.ModelID)
	assert.Equal(t, "Hello World", got.Content)
	assert.Len(t, got.Pages, 1)
}

func TestAnalyzeDocumentOperationFailure(t *testing.T) {
	failure := AnalyzeOperation{
		Status: StatusFailed,
		Error:  &ResponseError{Code: "InvalidContent", Message: "file is corrupt"},
	}
	server := newTestServer(t, 0, failure)
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", WithPollInterval(time.Millisecond))
	require.NoError(t, err)

	_, err = client.AnalyzeDocument(context.Background(), "prebuilt-read", []byte("junk"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidContent")
	assert.Contains(t, err.Error(), "file is corrupt")
}

func TestAnalyzeDocumentSubmissionRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"code": "PermissionDenied", "message": "key is not valid"},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "bad-key", WithPollInterval(time.Millisecond))
	require.NoError(t, err)

	_, err = client.AnalyzeDocument(context.Background(), "prebuilt-read", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PermissionDenied")
}

func TestAnalyzeDocumentContextCancellation(t *testing.T) {
	server := newTestServer(t, 1<<30, AnalyzeOperation{})
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", WithPollInterval(time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.AnalyzeDocument(ctx, "prebuilt-read", nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClassifyDocument(t *testing.T) {
	result := &AnalyzeResult{
		ModelID: "my-classifier",
		Documents: []AnalyzedDocument{
			{DocType: "invoice", Confidence: 0.98, BoundingRegions: []BoundingRegion{{PageNumber: 1}}},
		},
	}
	server := newTestServer(t, 1, AnalyzeOperation{Status: StatusSucceeded, AnalyzeResult: result})
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", WithPollInterval(time.Millisecond))
	require.NoError(t, err)

	got, err := client.ClassifyDocument(context.Background(), "my-classifier", []byte("%PDF-"))
	require.NoError(t, err)
	require.Len(t, got.Documents, 1)
	assert.Equal(t, "invoice", got.Documents[0].DocType)
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "key")
	assert.Error(t, err)
	_, err = NewClient("https://example.cognitiveservices.azure.com", "")
	assert.Error(t, err)
}

package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lounge_finder/internal/adapters/gemini"
	"lounge_finder/internal/domain"
)

func okBody(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
		},
	}
}

func TestClient_Generate_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req struct {
			Contents []struct {
				Parts []struct{ Text string } `json:"parts"`
			} `json:"contents"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(okBody("  ✨ lovely lounge  "))
	}))
	defer ts.Close()

	cl, err := gemini.New(ts.URL, "test-key", "gemini-test", 100)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	g := cl.Generate(ctx, "hello")
	assert.Equal(t, domain.Generated("✨ lovely lounge"), g)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestClient_Generate_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	cl, err := gemini.New(ts.URL, "bad", "m", 100)
	require.NoError(t, err)

	g := cl.Generate(context.Background(), "p")
	assert.Equal(t, domain.GenerationFailed, g.Status)
	assert.ErrorIs(t, g.Err, gemini.ErrUnauthorized)
}

func TestClient_Generate_BadRequestCarriesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusBadRequest)
	}))
	defer ts.Close()

	cl, _ := gemini.New(ts.URL, "k", "m", 100)
	_, err := cl.GenerateContent(context.Background(), "p")

	var se *gemini.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Contains(t, se.Body, "model not found")
}

func TestClient_Generate_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer ts.Close()

	cl, _ := gemini.New(ts.URL, "k", "m", 100)
	g := cl.Generate(context.Background(), "p")
	assert.Equal(t, domain.GenerationFailed, g.Status)
	assert.ErrorIs(t, g.Err, gemini.ErrEmptyResponse)
}

func TestClient_Generate_ContextDeadline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	cl, _ := gemini.New(ts.URL, "k", "m", 100)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	g := cl.Generate(ctx, "p")
	assert.Equal(t, domain.GenerationFailed, g.Status)
	assert.ErrorIs(t, g.Err, context.DeadlineExceeded)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := gemini.New("http://x", "", "m", 1)
	assert.ErrorIs(t, err, gemini.ErrAPIKeyRequired)
}

func TestNewGenerator(t *testing.T) {
	g, err := gemini.NewGenerator(false, "", "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.GenerationDisabled, g.Generate(context.Background(), "p").Status)

	g, err = gemini.NewGenerator(true, "http://x", "k", "m", 1)
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, g)

	_, err = gemini.NewGenerator(true, "http://x", "", "m", 1)
	assert.Error(t, err)
}

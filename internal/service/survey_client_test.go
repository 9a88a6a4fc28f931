package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"talent_bridge_backend/internal/config"
	"talent_bridge_backend/internal/engine"
	"talent_bridge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurveyClientSave(t *testing.T) {
	var got engine.SavePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42}`))
	}))
	defer srv.Close()

	client := NewSurveyClient(config.UpstreamConfig{SaveURL: srv.URL, TimeoutSeconds: 2})
	err := client.Save(context.Background(), engine.SavePayload{Name: "Sara", SurveyType: "Teachers", TalentPercent: 66.67})
	require.NoError(t, err)
	assert.Equal(t, "Sara", got.Name)
	assert.Equal(t, 66.67, got.TalentPercent)
}

func TestSurveyClientSaveRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("name is required"))
	}))
	defer srv.Close()

	client := NewSurveyClient(config.UpstreamConfig{SaveURL: srv.URL})
	err := client.Save(context.Background(), engine.SavePayload{})

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusBadRequest, upErr.Status)
	assert.Equal(t, "name is required", upErr.Body)
	assert.ErrorIs(t, err, util.ErrUpstreamRejected)
}

func TestSurveyClientSaveNonJSONSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := NewSurveyClient(config.UpstreamConfig{SaveURL: srv.URL})
	assert.Error(t, client.Save(context.Background(), engine.SavePayload{}))
}

func TestSurveyClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewSurveyClient(config.UpstreamConfig{SaveURL: url})
	status, _, err := client.Forward(context.Background(), []byte(`{}`))
	assert.Error(t, err)
	assert.Zero(t, status)
}

func TestSurveyClientForwardIsVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	}))
	defer srv.Close()

	client := NewSurveyClient(config.UpstreamConfig{SaveURL: srv.URL})
	status, body, err := client.Forward(context.Background(), []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"a":1}`, string(body))
}

func TestSurveyClientSetUpstream(t *testing.T) {
	hit := make(chan string, 2)
	mk := func(name string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit <- name
			w.Write([]byte(`{}`))
		}))
	}
	one, two := mk("one"), mk("two")
	defer one.Close()
	defer two.Close()

	client := NewSurveyClient(config.UpstreamConfig{SummaryURL: one.URL})
	_, _, err := client.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one", <-hit)

	client.SetUpstream(config.UpstreamConfig{SummaryURL: two.URL})
	_, _, err = client.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "two", <-hit)
}

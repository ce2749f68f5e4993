package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/fittrack/internal/middleware"

	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func doRegister(ctx context.Context, t *testing.T, creds credentials) {
	t.Helper()
	credsJson, err := json.Marshal(creds)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/register", serverEndpoint), bytes.NewBuffer(credsJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func doLogin(ctx context.Context, t *testing.T, creds credentials) string {
	t.Helper()
	credsJson, err := json.Marshal(creds)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/login", serverEndpoint), bytes.NewBuffer(credsJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, respBytes)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(respBytes, &loginResp))
	require.NotEmpty(t, loginResp.Token)

	return loginResp.Token
}

// doRequest fires an authenticated request and unmarshals the response
// into out (when out is non-nil and the expected status matches).
func doRequest(
	ctx context.Context, t *testing.T,
	method, path, token string,
	payload any,
	expectedStatus int,
	out any,
) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equalf(t, expectedStatus, resp.StatusCode, "response: %s", respBytes)

	if out != nil {
		require.NoError(t, json.Unmarshal(respBytes, out))
	}
}

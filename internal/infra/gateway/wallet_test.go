//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamestore/internal/infra"
	"gamestore/internal/infra/gateway"
	"gamestore/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(serverURL string) *gateway.WalletGateway {
	return gateway.NewWalletGateway(config.WalletConfig{
		BaseURL: serverURL,
		Timeout: time.Second,
	})
}

func TestBalanceOf_Success(t *testing.T) {
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/balance", r.URL.Path)
		assert.Equal(t, userID.String(), r.Header.Get("X-User-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"balance":"123.45"}`))
	}))
	defer server.Close()

	balance, err := newGateway(server.URL).BalanceOf(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("123.45")))
}

func TestBalanceOf_NumericBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"balance":59.9}`))
	}))
	defer server.Close()

	balance, err := newGateway(server.URL).BalanceOf(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("59.9")))
}

func TestBalanceOf_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newGateway(server.URL).BalanceOf(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
}

func TestBalanceOf_AccountNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newGateway(server.URL).BalanceOf(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBalanceOf_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newGateway(server.URL).BalanceOf(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
}

func TestBalanceOf_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newGateway(server.URL).BalanceOf(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
}

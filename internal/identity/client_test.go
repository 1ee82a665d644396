package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"touchline/internal/admission/ports"
	"touchline/pkg/platform/sentinel"
)

const testServiceKey = "test-service-key"

func TestClientCreateAccount(t *testing.T) {
	var gotIdempotencyKey string
	var gotBody createAccountRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/accounts", r.URL.Path)

		gotIdempotencyKey = r.Header.Get("Idempotency-Key")
		requireValidServiceToken(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"account_id": "acct_123"})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, testServiceKey)
	require.NoError(t, err)

	accountID, err := client.CreateAccount(context.Background(), ports.NewAccount{
		Username: "jane.doe@example.com",
		Secret:   "hunter2hunter2",
		Profile:  ports.AccountProfile{DisplayName: "Jane Doe", Email: "jane.doe@example.com"},
	})
	require.NoError(t, err)
	require.Equal(t, "acct_123", accountID.String())
	require.NotEmpty(t, gotIdempotencyKey)
	require.Equal(t, "jane.doe@example.com", gotBody.Username)
	require.Equal(t, "Jane Doe", gotBody.Profile.DisplayName)
}

func TestClientCreateAccountConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, testServiceKey)
	require.NoError(t, err)

	_, err = client.CreateAccount(context.Background(), ports.NewAccount{
		Username: "taken@example.com",
		Secret:   "hunter2hunter2",
	})
	require.ErrorIs(t, err, sentinel.ErrConflict)
}

func TestClientCreateAccountServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, testServiceKey)
	require.NoError(t, err)

	_, err = client.CreateAccount(context.Background(), ports.NewAccount{
		Username: "jane@example.com",
		Secret:   "hunter2hunter2",
	})
	require.Error(t, err)
	require.False(t, errors.Is(err, sentinel.ErrConflict))
}

func TestClientDeleteAccountIdempotent(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotFound, http.StatusGone} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/accounts/acct_123", r.URL.Path)
			w.WriteHeader(status)
		}))

		client, err := NewClient(srv.URL, testServiceKey)
		require.NoError(t, err)

		err = client.DeleteAccount(context.Background(), "acct_123")
		require.NoError(t, err, "status %d should count as success", status)
		srv.Close()
	}
}

func TestClientDeleteAccountFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, testServiceKey)
	require.NoError(t, err)

	require.Error(t, client.DeleteAccount(context.Background(), "acct_123"))
}

func requireValidServiceToken(t *testing.T, header string) {
	t.Helper()
	require.True(t, strings.HasPrefix(header, "Bearer "))

	raw := strings.TrimPrefix(header, "Bearer ")
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, token.Method)
		return []byte(testServiceKey), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, serviceTokenIssuer, claims["iss"])
}

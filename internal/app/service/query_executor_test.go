package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/client"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/domain/entity"
	wire "github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testRequest = entity.PageRequest{
	Contract: "0xc9041f80dce73721a5f6a779672ec57ef255d27c",
	TokenID:  "29",
	Owner:    "0x1111111111111111111111111111111111111111",
	First:    10,
}

func TestQueryExecutor_Fetch_BothSucceed(t *testing.T) {
	gql := newFakeGraphQLClient()
	gql.responses[client.TokenOperationName] = wire.TokenResponse{Token: sampleToken()}
	gql.responses[client.BalancesOperationName] = wire.BalancesResponse{Balances: sampleBalances(3)}

	res, err := NewQueryExecutor(gql, nopLogger{}, time.Second).Fetch(context.Background(), testRequest)
	require.NoError(t, err)
	require.NotNil(t, res.Token)
	require.NotNil(t, res.Balances)
	assert.Len(t, res.Balances.Entries, 3)

	op := gql.calls[client.BalancesOperationName]
	assert.Equal(t, testRequest.Owner, op.Variables["owner"])
	assert.Equal(t, testRequest.Contract, op.Variables["contract"])
	assert.Equal(t, 10, op.Variables["first"])
}

func TestQueryExecutor_Fetch_TokenOnly(t *testing.T) {
	gql := newFakeGraphQLClient()
	gql.responses[client.TokenOperationName] = wire.TokenResponse{Token: sampleToken()}

	req := testRequest
	req.Owner = ""
	res, err := NewQueryExecutor(gql, nopLogger{}, 0).Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, res.Balances)
	assert.False(t, gql.called(client.BalancesOperationName))
}

func TestQueryExecutor_Fetch_TokenFailureDiscardsBalances(t *testing.T) {
	transportErr := errors.New("connection refused")
	gql := newFakeGraphQLClient()
	gql.errs[client.TokenOperationName] = transportErr
	gql.responses[client.BalancesOperationName] = wire.BalancesResponse{Balances: sampleBalances(2)}

	res, err := NewQueryExecutor(gql, nopLogger{}, time.Second).Fetch(context.Background(), testRequest)
	require.Error(t, err)
	assert.Nil(t, res, "balances must not leak on failure")
	assert.ErrorIs(t, err, entity.ErrFetchFailed)
	assert.ErrorIs(t, err, transportErr)

	var fetchErr *entity.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, client.TokenOperationName, fetchErr.Operation)
}

func TestQueryExecutor_Fetch_BalancesFailure(t *testing.T) {
	gql := newFakeGraphQLClient()
	gql.responses[client.TokenOperationName] = wire.TokenResponse{Token: sampleToken()}
	gql.errs[client.BalancesOperationName] = &client.GraphQLError{Messages: []string{"owner not indexed"}}

	res, err := NewQueryExecutor(gql, nopLogger{}, time.Second).Fetch(context.Background(), testRequest)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, entity.ErrFetchFailed)

	var gqlErr *client.GraphQLError
	assert.ErrorAs(t, err, &gqlErr)
}

func TestQueryExecutor_Fetch_FailureCancelsSibling(t *testing.T) {
	gql := newFakeGraphQLClient()
	gql.block = client.BalancesOperationName
	gql.errs[client.TokenOperationName] = &client.HTTPStatusError{StatusCode: 500}

	done := make(chan struct{})
	var err error
	go func() {
		defer close(done)
		_, err = NewQueryExecutor(gql, nopLogger{}, 0).Fetch(context.Background(), testRequest)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Fetch did not return after the token query failed")
	}
	assert.ErrorIs(t, err, entity.ErrFetchFailed)
}

func TestQueryExecutor_Fetch_FailureCancelsInFlightRequest(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), client.BalancesOperationName) {
			<-release
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	defer close(release)

	gql := client.NewOneSourceClient(client.ClientOptions{Endpoint: srv.URL, Token: "t", Timeout: 5 * time.Second}, zap.NewNop())

	started := time.Now()
	res, err := NewQueryExecutor(gql, nopLogger{}, 0).Fetch(context.Background(), testRequest)
	elapsed := time.Since(started)

	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, entity.ErrFetchFailed)

	var statusErr *client.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Less(t, elapsed, 2*time.Second, "hanging balances request must be abandoned once the token query fails")
}

func TestQueryExecutor_Fetch_Timeout(t *testing.T) {
	gql := newFakeGraphQLClient()
	gql.block = client.TokenOperationName

	_, err := NewQueryExecutor(gql, nopLogger{}, 20*time.Millisecond).Fetch(context.Background(), testRequest)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrFetchFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueryExecutor_Fetch_NotFound(t *testing.T) {
	gql := newFakeGraphQLClient()
	gql.responses[client.TokenOperationName] = wire.TokenResponse{Token: nil}
	gql.responses[client.BalancesOperationName] = wire.BalancesResponse{Balances: sampleBalances(1)}

	_, err := NewQueryExecutor(gql, nopLogger{}, time.Second).Fetch(context.Background(), testRequest)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NotErrorIs(t, err, entity.ErrFetchFailed)
}

func TestQueryExecutor_Fetch_MalformedResponse(t *testing.T) {
	token := sampleToken()
	token.Contract = nil
	gql := newFakeGraphQLClient()
	gql.responses[client.TokenOperationName] = wire.TokenResponse{Token: token}

	req := testRequest
	req.Owner = ""
	_, err := NewQueryExecutor(gql, nopLogger{}, time.Second).Fetch(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrFetchFailed)
	assert.ErrorIs(t, err, wire.ErrMalformedResponse)
}

func TestQueryExecutor_Fetch_MissingBalancesIsEmptyPage(t *testing.T) {
	gql := newFakeGraphQLClient()
	gql.responses[client.TokenOperationName] = wire.TokenResponse{Token: sampleToken()}
	gql.responses[client.BalancesOperationName] = wire.BalancesResponse{}

	res, err := NewQueryExecutor(gql, nopLogger{}, time.Second).Fetch(context.Background(), testRequest)
	require.NoError(t, err)
	require.NotNil(t, res.Balances)
	assert.Empty(t, res.Balances.Entries)
}

package beacon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

func TestFinalizedHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/eth/v1/beacon/headers/finalized", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"root":"0xroot","header":{"message":{"slot":"123456"}}}}`)
	}))
	defer server.Close()

	header, err := NewClient(server.URL).FinalizedHeader(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(123456), header.Slot)
	require.Equal(t, "0xroot", header.Root)
}

func TestFinalizedHeaderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).FinalizedHeader(context.Background())
	require.Error(t, err)
}

func TestValidators(t *testing.T) {
	pubkey := make([]byte, 48)
	pubkey[0] = 0x99

	var gotIDs []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/eth/v1/beacon/states/123456/validators", r.URL.Path)
		gotIDs = append(gotIDs, r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":[{"index":"42","status":"active_ongoing","validator":{"pubkey":"%s"}}]}`,
			hexutil.Encode(pubkey))
	}))
	defer server.Close()

	validators, err := NewClient(server.URL).Validators(context.Background(), "123456", [][]byte{pubkey})
	require.NoError(t, err)
	require.Len(t, validators, 1)
	require.Equal(t, uint64(42), validators[0].Index)
	require.Equal(t, pubkey, validators[0].Pubkey)
	require.Equal(t, "active_ongoing", validators[0].Status)
	require.Equal(t, []string{hexutil.Encode(pubkey)}, gotIDs)
}

func TestValidatorsBatchesRequests(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer server.Close()

	pubkeys := make([][]byte, validatorIDBatch+1)
	for i := range pubkeys {
		pubkeys[i] = make([]byte, 48)
		pubkeys[i][0] = byte(i)
	}
	_, err := NewClient(server.URL).Validators(context.Background(), "head", pubkeys)
	require.NoError(t, err)
	require.Equal(t, 2, requests)
}

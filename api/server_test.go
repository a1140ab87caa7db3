package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/stakemirror/registry-indexer/registry"
	"github.com/stakemirror/registry-indexer/store"
)

var testModule = common.HexToAddress("0x5555")

func newTestServer(t *testing.T) (*Server, *store.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewServer(testModule, db), db
}

func seedStore(t *testing.T, db *store.DB) registry.Meta {
	t.Helper()
	ctx := context.Background()
	meta := registry.Meta{
		ModuleAddress: testModule,
		BlockNumber:   100,
		BlockHash:     common.HexToHash("0xaa"),
		Timestamp:     1700,
		KeysOpIndex:   7,
	}
	require.NoError(t, db.ApplyOperators(ctx, meta, []registry.Operator{{
		ModuleAddress:    testModule,
		Index:            0,
		Active:           true,
		Name:             "operator-0",
		RewardAddress:    common.HexToAddress("0x02"),
		TotalSigningKeys: 2,
		UsedSigningKeys:  1,
	}}))
	require.NoError(t, db.ApplyKeys(ctx, []registry.Key{
		{ModuleAddress: testModule, OperatorIndex: 0, Index: 0,
			Pubkey: []byte{0x01, 0x02}, DepositSignature: []byte{0x0a}, Used: true},
		{ModuleAddress: testModule, OperatorIndex: 0, Index: 1,
			Pubkey: []byte{0x03, 0x04}, DepositSignature: []byte{0x0b}, Used: false},
	}))
	return meta
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doRequest(t, server.Router(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestKeysTooEarly(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doRequest(t, server.Router(), http.MethodGet, "/v1/keys", "")
	require.Equal(t, http.StatusTooEarly, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["error"], "not yet synced")
}

func TestKeysStream(t *testing.T) {
	server, db := newTestServer(t)
	seedStore(t, db)

	rec := doRequest(t, server.Router(), http.MethodGet, "/v1/keys", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Meta struct {
			ElBlockSnapshot struct {
				BlockNumber uint64 `json:"blockNumber"`
				BlockHash   string `json:"blockHash"`
			} `json:"elBlockSnapshot"`
		} `json:"meta"`
		Data []struct {
			OperatorIndex uint32        `json:"operatorIndex"`
			Index         uint32        `json:"index"`
			Key           hexutil.Bytes `json:"key"`
			Used          bool          `json:"used"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, uint64(100), body.Meta.ElBlockSnapshot.BlockNumber)
	require.Len(t, body.Data, 2)
	require.True(t, body.Data[0].Used)
	require.False(t, body.Data[1].Used)

	rec = doRequest(t, server.Router(), http.MethodGet, "/v1/keys?used=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)

	rec = doRequest(t, server.Router(), http.MethodGet, "/v1/keys?used=banana", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKeyByPubkey(t *testing.T) {
	server, db := newTestServer(t)
	seedStore(t, db)

	rec := doRequest(t, server.Router(), http.MethodGet, "/v1/keys/0x0102", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			Index uint32 `json:"index"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)

	rec = doRequest(t, server.Router(), http.MethodGet, "/v1/keys/nothex", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, server.Router(), http.MethodGet, "/v1/keys/0xdead", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Empty(t, body.Data)
}

func TestFindKeys(t *testing.T) {
	server, db := newTestServer(t)
	seedStore(t, db)

	rec := doRequest(t, server.Router(), http.MethodPost, "/v1/keys/find",
		`{"pubkeys":["0x0102","0x0304"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)

	rec = doRequest(t, server.Router(), http.MethodPost, "/v1/keys/find", `{"pubkeys":["zzz"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, server.Router(), http.MethodPost, "/v1/keys/find", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOperators(t *testing.T) {
	server, db := newTestServer(t)
	seedStore(t, db)

	rec := doRequest(t, server.Router(), http.MethodGet, "/v1/operators", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			Index            uint32 `json:"index"`
			Name             string `json:"name"`
			TotalSigningKeys uint64 `json:"totalSigningKeys"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "operator-0", body.Data[0].Name)
	require.Equal(t, uint64(2), body.Data[0].TotalSigningKeys)
}

func TestStatus(t *testing.T) {
	server, db := newTestServer(t)

	// status responds before the first sync, without a snapshot
	rec := doRequest(t, server.Router(), http.MethodGet, "/v1/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotContains(t, body, "elBlockSnapshot")

	seedStore(t, db)
	rec = doRequest(t, server.Router(), http.MethodGet, "/v1/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "elBlockSnapshot")
	require.Equal(t, testModule.Hex(), body["moduleAddress"])
}

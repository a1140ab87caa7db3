package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/stakemirror/registry-indexer/registry"
	"github.com/stakemirror/registry-indexer/store"
)

// Server exposes the mirrored registry state to HTTP consumers. It only
// reads committed store state; the update loop owns all writes.
type Server struct {
	module common.Address
	store  *store.DB
	srv    *http.Server
}

func NewServer(module common.Address, db *store.DB) *Server {
	return &Server{module: module, store: db}
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/v1/status", s.handleStatus).Methods(http.MethodGet)
	router.HandleFunc("/v1/keys", s.handleKeys).Methods(http.MethodGet)
	router.HandleFunc("/v1/keys/find", s.handleFindKeys).Methods(http.MethodPost)
	router.HandleFunc("/v1/keys/{pubkey}", s.handleKeyByPubkey).Methods(http.MethodGet)
	router.HandleFunc("/v1/operators", s.handleOperators).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func (s *Server) Start(hostname string, port int) error {
	s.srv = &http.Server{
		Addr:    net.JoinHostPort(hostname, strconv.Itoa(port)),
		Handler: s.Router(),
	}
	listener, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("bind api server: %w", err)
	}
	go func() {
		if err := s.srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("API server failed", "message", err)
		}
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// elBlockSnapshot is the execution layer block the mirrored rows were read
// at, surfaced with every data response.
type elBlockSnapshot struct {
	BlockNumber uint64 `json:"blockNumber"`
	BlockHash   string `json:"blockHash"`
	Timestamp   uint64 `json:"timestamp"`
}

type responseMeta struct {
	ElBlockSnapshot elBlockSnapshot `json:"elBlockSnapshot"`
}

type keyJSON struct {
	OperatorIndex    uint32        `json:"operatorIndex"`
	Index            uint32        `json:"index"`
	Key              hexutil.Bytes `json:"key"`
	DepositSignature hexutil.Bytes `json:"depositSignature"`
	Used             bool          `json:"used"`
}

type operatorJSON struct {
	Index             uint32 `json:"index"`
	Active            bool   `json:"active"`
	Name              string `json:"name"`
	RewardAddress     string `json:"rewardAddress"`
	StakingLimit      uint64 `json:"stakingLimit"`
	StoppedValidators uint64 `json:"stoppedValidators"`
	TotalSigningKeys  uint64 `json:"totalSigningKeys"`
	UsedSigningKeys   uint64 `json:"usedSigningKeys"`
}

func toKeyJSON(key registry.Key) keyJSON {
	return keyJSON{
		OperatorIndex:    key.OperatorIndex,
		Index:            key.Index,
		Key:              key.Pubkey,
		DepositSignature: key.DepositSignature,
		Used:             key.Used,
	}
}

func toMeta(meta *registry.Meta) responseMeta {
	return responseMeta{ElBlockSnapshot: elBlockSnapshot{
		BlockNumber: meta.BlockNumber,
		BlockHash:   meta.BlockHash.Hex(),
		Timestamp:   meta.Timestamp,
	}}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	meta, err := s.store.GetMeta(r.Context(), s.module)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	status := map[string]interface{}{
		"moduleAddress": s.module.Hex(),
	}
	if meta != nil {
		status["elBlockSnapshot"] = elBlockSnapshot{
			BlockNumber: meta.BlockNumber,
			BlockHash:   meta.BlockHash.Hex(),
			Timestamp:   meta.Timestamp,
		}
	}
	writeJSON(w, http.StatusOK, status)
}

// handleKeys streams every key of the module. The result set is unbounded,
// so rows are written straight from the cursor instead of being buffered.
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	meta, ok := s.requireMeta(w, r)
	if !ok {
		return
	}

	var used *bool
	if raw := r.URL.Query().Get("used"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid used filter")
			return
		}
		used = &parsed
	}

	it, err := s.store.StreamKeys(r.Context(), s.module, used)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer it.Close()

	w.Header().Set("Content-Type", "application/json")
	metaBytes, _ := json.Marshal(toMeta(meta))
	fmt.Fprintf(w, `{"meta":%s,"data":[`, metaBytes)
	first := true
	for it.Next() {
		row, err := json.Marshal(toKeyJSON(it.Key()))
		if err != nil {
			log.Error("Encode key row", "message", err)
			return
		}
		if !first {
			_, _ = w.Write([]byte(","))
		}
		first = false
		_, _ = w.Write(row)
	}
	if err := it.Err(); err != nil {
		// The body is already partially written; all we can do is cut the
		// stream so the client sees invalid JSON instead of truncated data.
		log.Error("Stream keys", "message", err)
		return
	}
	_, _ = w.Write([]byte("]}"))
}

func (s *Server) handleKeyByPubkey(w http.ResponseWriter, r *http.Request) {
	meta, ok := s.requireMeta(w, r)
	if !ok {
		return
	}
	pubkey, err := hexutil.Decode(mux.Vars(r)["pubkey"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pubkey")
		return
	}
	keys, err := s.store.FindKeysByPubkeys(r.Context(), s.module, [][]byte{pubkey})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeKeys(w, meta, keys)
}

func (s *Server) handleFindKeys(w http.ResponseWriter, r *http.Request) {
	meta, ok := s.requireMeta(w, r)
	if !ok {
		return
	}
	var body struct {
		Pubkeys []string `json:"pubkeys"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pubkeys := make([][]byte, 0, len(body.Pubkeys))
	for _, raw := range body.Pubkeys {
		pubkey, err := hexutil.Decode(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid pubkey %q", raw))
			return
		}
		pubkeys = append(pubkeys, pubkey)
	}
	keys, err := s.store.FindKeysByPubkeys(r.Context(), s.module, pubkeys)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeKeys(w, meta, keys)
}

func (s *Server) handleOperators(w http.ResponseWriter, r *http.Request) {
	meta, ok := s.requireMeta(w, r)
	if !ok {
		return
	}
	operators, err := s.store.FindAllOperators(r.Context(), s.module)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	data := make([]operatorJSON, 0, len(operators))
	for _, op := range operators {
		data = append(data, operatorJSON{
			Index:             op.Index,
			Active:            op.Active,
			Name:              op.Name,
			RewardAddress:     op.RewardAddress.Hex(),
			StakingLimit:      op.StakingLimit,
			StoppedValidators: op.StoppedValidators,
			TotalSigningKeys:  op.TotalSigningKeys,
			UsedSigningKeys:   op.UsedSigningKeys,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"meta": toMeta(meta),
		"data": data,
	})
}

// requireMeta answers 425 Too Early until the first update cycle committed a
// snapshot.
func (s *Server) requireMeta(w http.ResponseWriter, r *http.Request) (*registry.Meta, bool) {
	meta, err := s.store.GetMeta(r.Context(), s.module)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if meta == nil {
		writeError(w, http.StatusTooEarly, "registry is not yet synced")
		return nil, false
	}
	return meta, true
}

func (s *Server) writeKeys(w http.ResponseWriter, meta *registry.Meta, keys []registry.Key) {
	data := make([]keyJSON, 0, len(keys))
	for _, key := range keys {
		data = append(data, toKeyJSON(key))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"meta": toMeta(meta),
		"data": data,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Encode response", "message", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

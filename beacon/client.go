package beacon

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 30 * time.Second
	// validatorIDBatch bounds the id query parameter count per request.
	validatorIDBatch = 64
)

// Header is a consensus layer block header reference.
type Header struct {
	Slot uint64
	Root string
}

// Validator is one entry of the consensus layer validator set.
type Validator struct {
	Index  uint64
	Pubkey []byte
	Status string
}

// Client reads the consensus layer REST API.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetRetryCount(2).
		SetHeader("accept", "application/json")
	return &Client{http: client}
}

type headerResponse struct {
	Data struct {
		Root   string `json:"root"`
		Header struct {
			Message struct {
				Slot string `json:"slot"`
			} `json:"message"`
		} `json:"header"`
	} `json:"data"`
}

// FinalizedHeader fetches the latest finalized block header.
func (c *Client) FinalizedHeader(ctx context.Context) (Header, error) {
	var out headerResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/eth/v1/beacon/headers/finalized")
	if err != nil {
		return Header{}, fmt.Errorf("fetch finalized header: %w", err)
	}
	if resp.IsError() {
		return Header{}, fmt.Errorf("fetch finalized header: status %d", resp.StatusCode())
	}
	slot, err := strconv.ParseUint(out.Data.Header.Message.Slot, 10, 64)
	if err != nil {
		return Header{}, fmt.Errorf("parse finalized slot: %w", err)
	}
	return Header{Slot: slot, Root: out.Data.Root}, nil
}

type validatorsResponse struct {
	Data []struct {
		Index     string `json:"index"`
		Status    string `json:"status"`
		Validator struct {
			Pubkey string `json:"pubkey"`
		} `json:"validator"`
	} `json:"data"`
}

// Validators fetches the validator entries for the given pubkeys at the
// given state. Pubkeys unknown to the consensus layer are omitted from the
// result.
func (c *Client) Validators(ctx context.Context, stateID string, pubkeys [][]byte) ([]Validator, error) {
	validators := make([]Validator, 0, len(pubkeys))
	for start := 0; start < len(pubkeys); start += validatorIDBatch {
		end := start + validatorIDBatch
		if end > len(pubkeys) {
			end = len(pubkeys)
		}
		ids := make([]string, 0, end-start)
		for _, pk := range pubkeys[start:end] {
			ids = append(ids, hexutil.Encode(pk))
		}
		var out validatorsResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("id", strings.Join(ids, ",")).
			SetResult(&out).
			Get(fmt.Sprintf("/eth/v1/beacon/states/%s/validators", stateID))
		if err != nil {
			return nil, fmt.Errorf("fetch validators: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetch validators: status %d", resp.StatusCode())
		}
		for _, entry := range out.Data {
			index, err := strconv.ParseUint(entry.Index, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse validator index: %w", err)
			}
			pubkey, err := hexutil.Decode(entry.Validator.Pubkey)
			if err != nil {
				return nil, fmt.Errorf("parse validator pubkey: %w", err)
			}
			validators = append(validators, Validator{
				Index:  index,
				Pubkey: pubkey,
				Status: entry.Status,
			})
		}
	}
	return validators, nil
}

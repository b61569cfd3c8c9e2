package service

import (
	"context"
	"errors"
	"sync"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/client"
	wire "github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/entity"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// fakeGraphQLClient answers per operation name with a canned response or error.
type fakeGraphQLClient struct {
	mu        sync.Mutex
	responses map[string]any
	errs      map[string]error
	calls     map[string]client.Operation
	// block makes the named operation wait for ctx cancellation.
	block string
}

func newFakeGraphQLClient() *fakeGraphQLClient {
	return &fakeGraphQLClient{
		responses: map[string]any{},
		errs:      map[string]error{},
		calls:     map[string]client.Operation{},
	}
}

func (f *fakeGraphQLClient) Do(ctx context.Context, op client.Operation, out any) error {
	f.mu.Lock()
	f.calls[op.Name] = op
	resp := f.responses[op.Name]
	err := f.errs[op.Name]
	block := f.block == op.Name
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	switch dst := out.(type) {
	case *wire.TokenResponse:
		if r, ok := resp.(wire.TokenResponse); ok {
			*dst = r
		}
	case *wire.BalancesResponse:
		if r, ok := resp.(wire.BalancesResponse); ok {
			*dst = r
		}
	default:
		return errors.New("unexpected out type")
	}
	return nil
}

func (f *fakeGraphQLClient) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.calls[name]
	return ok
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func sampleToken() *wire.Token {
	return &wire.Token{
		Contract: &wire.ContractInfo{
			ID:     "0xc9041f80dce73721a5f6a779672ec57ef255d27c",
			Type:   "ERC721",
			Name:   "Kitties",
			Symbol: "KIT",
		},
		TokenID:        "29",
		TokenURI:       "https://example.com/meta/29",
		TokenURIStatus: "OK",
		Image: &wire.ImageAsset{
			Status:      wire.ImageStatusOK,
			URL:         "QmXyz123",
			ContentType: "image/png",
			Width:       512,
			Height:      512,
			Thumbnails: []wire.Thumbnail{
				{Preset: "small", Status: "OK", URL: "https://api.onesource.io/t/29-s.png", Width: 64, Height: 64, CreatedAt: "2024-01-02T03:04:05Z"},
				{Preset: "large", Status: "PENDING", URL: "https://api.onesource.io/t/29-l.png"},
			},
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		CreatedAt:    "2021-08-15T10:30:00Z",
		CreatedBlock: 13000000,
	}
}

func sampleBalances(n int) *wire.BalancesPage {
	page := &wire.BalancesPage{Count: n, Remaining: 3, Cursor: "next"}
	for i := 0; i < n; i++ {
		page.Entries = append(page.Entries, wire.BalanceEntry{
			Owner:        "0x1111111111111111111111111111111111111111",
			ContractType: "ERC1155",
			Contract:     &wire.ContractInfo{ID: "0xabc", Type: "ERC1155", Name: "Items", Symbol: "ITM"},
			Token: &wire.BalanceToken{
				TokenID: string(rune('1' + i)),
				Image:   &wire.ImageAsset{Status: "OK", URL: "https://arweave.net/img" + string(rune('1'+i))},
			},
			Value: "5",
		})
	}
	return page
}

package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gamestore/internal/infra"
	"gamestore/internal/pkg/config"
	"gamestore/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletGateway reads user balances from the external account service. It is
// read-only: debits are requested through the settlement channel, never here.
type WalletGateway struct {
	baseURL string
	client  *http.Client
}

func NewWalletGateway(cfg config.WalletConfig) *WalletGateway {
	return &WalletGateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

func (g *WalletGateway) BalanceOf(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/accounts/balance", nil)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "failed to build balance request")
	}
	req.Header.Set("X-User-Id", userID.String())
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("wallet service unreachable", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("wallet service returned status %d", resp.StatusCode)
		if resp.StatusCode == http.StatusNotFound {
			return decimal.Zero, infra.WrapRepoErr("wallet account not found", err, infra.KindNotFound)
		}
		return decimal.Zero, infra.WrapRepoErr("wallet service error", err, infra.KindUnavailable)
	}

	var body balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, infra.WrapRepoErr("malformed wallet balance response", err, infra.KindUnavailable)
	}
	return body.Balance, nil
}

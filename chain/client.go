package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"

	"github.com/bridgeworld/atlas-mine-watcher/common/logging"
)

// PoolInterface supplies the pool-wide total mining power.
type PoolInterface interface {
	GetTotalMiningPower() (decimal.Decimal, error)
}

// Client reads the Atlas Mine contract over JSON-RPC.
type Client struct {
	client   *ethclient.Client
	logger   logging.Logger
	ctx      context.Context
	mineAddr common.Address
}

// selector of totalLpToken()
var totalLpTokenSelector = crypto.Keccak256([]byte("totalLpToken()"))[:4]

func NewClient(logger logging.Logger, ctx context.Context, rpcURL string, mineAddr string) (*Client, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("rpcURL is empty")
	}
	logger.Info("New chain client with rpcUrl=%s mine=%s", rpcURL, mineAddr)
	c, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		client:   c,
		logger:   logger,
		ctx:      ctx,
		mineAddr: common.HexToAddress(mineAddr),
	}, nil
}

// GetTotalMiningPower reads totalLpToken() from the mine contract and
// converts it from base units.
func (c *Client) GetTotalMiningPower() (decimal.Decimal, error) {
	ctx30, cancel := context.WithTimeout(c.ctx, 30*time.Second)
	defer cancel()
	ret, err := c.client.CallContract(ctx30, ethereum.CallMsg{
		To:   &c.mineAddr,
		Data: totalLpTokenSelector,
	}, nil)
	if err != nil {
		c.logger.Error("fail to call totalLpToken on %s err=%s", c.mineAddr.Hex(), err)
		return decimal.Zero, err
	}
	if len(ret) == 0 {
		return decimal.Zero, fmt.Errorf("empty totalLpToken return from %s", c.mineAddr.Hex())
	}
	total := new(big.Int).SetBytes(ret)
	return decimal.NewFromBigInt(total, -18), nil
}

// GetLatestBlockTime returns the timestamp of the chain head, used as the
// sync clock so computed snapshots line up with chain state.
func (c *Client) GetLatestBlockTime() (int64, error) {
	ctx30, cancel := context.WithTimeout(c.ctx, 30*time.Second)
	defer cancel()
	header, err := c.client.HeaderByNumber(ctx30, nil)
	if err != nil {
		c.logger.Error("fail to get latest header err=%s", err)
		return 0, err
	}
	return int64(header.Time), nil
}

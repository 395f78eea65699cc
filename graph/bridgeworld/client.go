package bridgeworld

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bridgeworld/atlas-mine-watcher/common/logging"
	"github.com/bridgeworld/atlas-mine-watcher/mine"
	utils "github.com/bridgeworld/atlas-mine-watcher/utils/http"
)

// HolderRecords bundles everything the subgraph knows about one holder plus
// the treasure token list used for what-if additions. Boost is the
// graph-side aggregate NFT boost as a decimal string; it can be empty.
type HolderRecords struct {
	Boost     string
	Deposits  []mine.RawDeposit
	Staked    []mine.RawStakedToken
	Treasures []mine.RawToken
}

type Client struct {
	logger logging.Logger
	client *utils.Client
}

type GraphInterface interface {
	// GetHolderRecords returns the holder's raw deposits and staked tokens.
	GetHolderRecords(address string) (*HolderRecords, error)

	// GetTopDeposits pages through the mine's largest deposits.
	GetTopDeposits(mineID string, first, skip int) ([]mine.RawDeposit, error)
}

func NewClient(logger logging.Logger, url string) *Client {
	logger.Info("New Bridgeworld graph client with url %s", url)
	return &Client{
		logger: logger,
		client: utils.NewHttpClient(utils.DefaultTransport, logger, url),
	}
}

// GetHolderRecords gets one holder's deposits, staked tokens and the
// treasure list in a single query. An unknown address yields empty records,
// not an error.
func (c *Client) GetHolderRecords(address string) (*HolderRecords, error) {
	c.logger.Debug("Get holder records of %s", address)
	query := `{
		user(id: "%s") {
			boost
			deposits(where: { lock_not: null }) {
				id
				amount
				user { id }
				lock
				endTimestamp
			}
			staked(where: { mine_not: null }) {
				id
				quantity
				token {
					id
					name
					category
					metadata {
						... on LegionInfo { boost }
						... on TreasureInfo { boost }
					}
				}
			}
		}
		treasures: tokens(first: 50, where: { category: Treasure }) {
			id
			name
			category
			metadata {
				... on TreasureInfo { boost }
			}
		}
	}`
	var resp struct {
		Data struct {
			User *struct {
				Boost    string                `json:"boost"`
				Deposits []mine.RawDeposit     `json:"deposits"`
				Staked   []mine.RawStakedToken `json:"staked"`
			}
			Treasures []mine.RawToken
		}
	}
	if err := c.queryGraph(&resp, query, address); err != nil {
		return nil, fmt.Errorf("fail to get holder records of %s, err=%s", address, err)
	}
	records := &HolderRecords{Treasures: resp.Data.Treasures}
	if resp.Data.User != nil {
		records.Boost = resp.Data.User.Boost
		records.Deposits = resp.Data.User.Deposits
		records.Staked = resp.Data.User.Staked
	}
	return records, nil
}

// GetTopDeposits gets the mine's deposits ordered by amount, largest first.
func (c *Client) GetTopDeposits(mineID string, first, skip int) ([]mine.RawDeposit, error) {
	c.logger.Debug("Get top deposits of mine %s first %d skip %d", mineID, first, skip)
	query := `{
		atlasMine(id: "%s") {
			id
			deposits(first: %d, skip: %d, orderBy: amount, orderDirection: desc) {
				id
				amount
				user { id }
				lock
				endTimestamp
			}
		}
	}`
	var resp struct {
		Data struct {
			AtlasMine *struct {
				ID       string            `json:"id"`
				Deposits []mine.RawDeposit `json:"deposits"`
			}
		}
	}
	if err := c.queryGraph(&resp, query, mineID, first, skip); err != nil {
		return nil, fmt.Errorf("fail to get top deposits of mine %s, err=%s", mineID, err)
	}
	if resp.Data.AtlasMine == nil {
		return nil, nil
	}
	return resp.Data.AtlasMine.Deposits, nil
}

// queryGraph return err if failed to get response from graph in three times
func (c *Client) queryGraph(resp interface{}, query string, args ...interface{}) error {
	var params struct {
		Query string `json:"query"`
	}
	params.Query = fmt.Sprintf(query, args...)
	for i := 0; i < 3; i++ {
		err, code, res := c.client.Post(nil, params, nil)
		if err != nil {
			c.logger.Error("fail to post http params=%+v err=%s", params, err)
			continue
		} else if code/100 != 2 {
			c.logger.Error("unexpected http params=%+v, response=%v", params, code)
			continue
		}
		err = json.Unmarshal(res, &resp)
		if err != nil {
			c.logger.Error("fail to unmarshal result=%+v, err=%s", res, err)
			continue
		}
		// success
		return nil
	}
	return errors.New("fail to query Bridgeworld graph in three times")
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bridgeworld/atlas-mine-watcher/common/logging"
	database "github.com/bridgeworld/atlas-mine-watcher/database/db"
	"github.com/bridgeworld/atlas-mine-watcher/database/models/mining"
	"github.com/bridgeworld/atlas-mine-watcher/graph/bridgeworld"
	"github.com/bridgeworld/atlas-mine-watcher/mine"
)

// DashboardServer serves computed holder numbers. Values are emitted as
// full-precision decimal strings; rounding and locale formatting belong to
// the consumer.
type DashboardServer struct {
	ctx         context.Context
	logger      logging.Logger
	db          *gorm.DB
	graphClient bridgeworld.GraphInterface
	mineID      string
	server      *http.Server
}

type DashboardResp struct {
	Address     string `json:"address"`
	Timestamp   int64  `json:"timestamp"`
	Deposited   string `json:"deposited"`
	NFTBoost    string `json:"nftBoost"`
	MiningPower string `json:"miningPower"`
	PoolShare   string `json:"poolShare"`
	Reward      string `json:"reward"`
	WindowHours int64  `json:"windowHours"`
}

type PositionResp struct {
	ID           string `json:"id"`
	Address      string `json:"address,omitempty"`
	Amount       string `json:"amount"`
	LockupPeriod string `json:"lockupPeriod"`
	UnlockDate   string `json:"unlockDate"`
}

func NewDashboardServer(
	ctx context.Context, logger logging.Logger,
	graphClient bridgeworld.GraphInterface, mineID string,
) *DashboardServer {
	s := &DashboardServer{
		ctx:         ctx,
		logger:      logger,
		db:          database.GetDB(),
		graphClient: graphClient,
		mineID:      mineID,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard", s.OnQueryDashboard)
	mux.HandleFunc("/whatif", s.OnQueryWhatIf)
	mux.HandleFunc("/leaderboard", s.OnQueryLeaderboard)
	s.server = &http.Server{
		Addr:         ":9487",
		WriteTimeout: time.Second * 25,
		Handler:      mux,
	}
	return s
}

func (s *DashboardServer) Shutdown() error {
	return s.server.Shutdown(s.ctx)
}

func (s *DashboardServer) Run() error {
	s.logger.Info("Starting dashboard api httpserver")
	go func() {
		err := s.server.ListenAndServe()
		if err != nil {
			if err == http.ErrServerClosed {
				s.logger.Info("Server closed under request")
			} else {
				s.logger.Critical("Server closed unexpected %s", err)
			}
		}
	}()
	<-s.ctx.Done()
	s.logger.Info("Dashboard server receives shutdown signal.")
	return nil
}

// OnQueryDashboard returns the latest snapshot of one holder. window selects
// the reward projection in hours (default one day); rate applies an external
// currency conversion to amount figures.
func (s *DashboardServer) OnQueryDashboard(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		http.Error(w, "address is required", http.StatusBadRequest)
		return
	}
	window := int64(mine.WindowDay)
	if q := r.URL.Query().Get("window"); q != "" {
		parsed, err := strconv.ParseInt(q, 10, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid window", http.StatusBadRequest)
			return
		}
		window = parsed
	}
	rate := decimal.NewFromInt(1)
	if q := r.URL.Query().Get("rate"); q != "" {
		parsed, err := decimal.NewFromString(q)
		if err != nil {
			http.Error(w, "invalid rate", http.StatusBadRequest)
			return
		}
		rate = parsed
	}

	var snapshots []mining.HolderSnapshot
	err := s.db.Model(&mining.HolderSnapshot{}).Limit(1).Order("timestamp desc").
		Where("address = ?", address).Scan(&snapshots).Error
	if err != nil {
		s.logger.Error("fail to get snapshot of %s err=%s", address, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if len(snapshots) == 0 {
		http.Error(w, "holder not found", http.StatusNotFound)
		return
	}
	snapshot := snapshots[0]

	reward := mine.ProjectedReward(
		snapshot.PoolShare, mine.EmissionsPerHour(), decimal.NewFromInt(window))
	resp := DashboardResp{
		Address:     snapshot.Address,
		Timestamp:   snapshot.Timestamp,
		Deposited:   mine.Convert(snapshot.Deposited, rate).String(),
		NFTBoost:    snapshot.NFTBoost.String(),
		MiningPower: snapshot.MiningPower.String(),
		PoolShare:   snapshot.PoolShare.String(),
		Reward:      mine.Convert(reward, rate).String(),
		WindowHours: window,
	}
	s.writeJSON(w, resp)
}

// OnQueryWhatIf recomputes a holder's numbers over a hypothetical edit of
// their live records: remove a deposit, add a deposit, add or remove an
// NFT. Edits never touch stored snapshots; the handler re-invokes the same
// calculators over the modified snapshot.
func (s *DashboardServer) OnQueryWhatIf(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	address := q.Get("address")
	if address == "" {
		http.Error(w, "address is required", http.StatusBadRequest)
		return
	}
	records, err := s.graphClient.GetHolderRecords(address)
	if err != nil {
		s.logger.Error("fail to get records of %s err=%s", address, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	holder := mine.NewHolder(address, records.Deposits, records.Staked)

	if id := q.Get("removeDeposit"); id != "" {
		holder = holder.RemovePosition(id)
	}
	if amountStr := q.Get("addAmount"); amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil || amount.IsNegative() {
			http.Error(w, "invalid addAmount", http.StatusBadRequest)
			return
		}
		lock := mine.LockUnknown
		if lockStr := q.Get("addLock"); lockStr != "" {
			parsed, err := strconv.Atoi(lockStr)
			if err != nil {
				http.Error(w, "invalid addLock", http.StatusBadRequest)
				return
			}
			lock = mine.LockPeriod(parsed)
		}
		holder = holder.AddPosition(mine.Position{
			ID:     "whatif-" + strconv.Itoa(len(holder.Positions)),
			Amount: amount,
			Lock:   lock,
		})
	}
	if id := q.Get("addNft"); id != "" {
		if !holder.CanAddCategory(tokenCategory(records.Treasures, id)) {
			http.Error(w, "category limit reached", http.StatusBadRequest)
			return
		}
		next, ok := holder.AddAsset(records.Treasures, id)
		if !ok {
			// reported no-op, the rest of the edit still applies
			s.logger.Warn("attempting to add unknown NFT with id %s", id)
		}
		holder = next
	}
	if id := q.Get("removeNft"); id != "" {
		holder = holder.RemoveAsset(id)
	}

	// hypothetical boost always comes from the composed asset set
	nftBoost := holder.NFTBoost()
	power := mine.TotalMiningPower(holder.Positions, nftBoost)
	poolTotal := s.latestPoolTotal(address)
	share := mine.PoolSharePct(power, poolTotal)
	reward := mine.ProjectedReward(
		share, mine.EmissionsPerHour(), decimal.NewFromInt(mine.WindowDay))

	s.writeJSON(w, DashboardResp{
		Address:     address,
		Deposited:   holder.TotalDeposited().String(),
		NFTBoost:    nftBoost.String(),
		MiningPower: power.String(),
		PoolShare:   share.String(),
		Reward:      reward.String(),
		WindowHours: mine.WindowDay,
	})
}

// latestPoolTotal reads the pool-wide mining power from the holder's most
// recent snapshot. Before the first sync it is zero, which downstream math
// treats as a zero-share pool.
func (s *DashboardServer) latestPoolTotal(address string) decimal.Decimal {
	var snapshots []mining.HolderSnapshot
	err := s.db.Model(&mining.HolderSnapshot{}).Limit(1).Order("timestamp desc").
		Where("address = ?", address).Scan(&snapshots).Error
	if err != nil || len(snapshots) == 0 {
		return decimal.Zero
	}
	return snapshots[0].PoolMiningPower
}

func tokenCategory(tokens []mine.RawToken, id string) string {
	for _, token := range tokens {
		if token.ID == id {
			return token.Category
		}
	}
	return ""
}

// OnQueryLeaderboard returns the mine's largest deposits, normalized.
func (s *DashboardServer) OnQueryLeaderboard(w http.ResponseWriter, r *http.Request) {
	first, skip := 50, 0
	if q := r.URL.Query().Get("first"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed <= 0 || parsed > 1000 {
			http.Error(w, "invalid first", http.StatusBadRequest)
			return
		}
		first = parsed
	}
	if q := r.URL.Query().Get("skip"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid skip", http.StatusBadRequest)
			return
		}
		skip = parsed
	}

	raws, err := s.graphClient.GetTopDeposits(s.mineID, first, skip)
	if err != nil {
		s.logger.Error("fail to get top deposits err=%s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	positions := mine.NormalizeDeposits(raws)
	resp := make([]PositionResp, 0, len(positions))
	for _, p := range positions {
		resp = append(resp, PositionResp{
			ID:           p.ID,
			Address:      p.Address,
			Amount:       p.Amount.String(),
			LockupPeriod: p.Lock.DisplayText(),
			UnlockDate:   p.UnlockTime.Format(time.RFC3339),
		})
	}
	s.writeJSON(w, resp)
}

func (s *DashboardServer) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("fail to encode response err=%s", err)
	}
}

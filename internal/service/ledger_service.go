package service

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/squareone-app/backend/internal/calculator"
	"github.com/squareone-app/backend/internal/middleware"
	"github.com/squareone-app/backend/internal/models"
	"github.com/squareone-app/backend/internal/storage"
)

// LedgerService exposes transactions, friends and the derived ledger views.
// Every derived value (balances, totals, chart data, gray-out flags) is
// recomputed from the full transaction list on each request; nothing is
// cached or persisted.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage
// backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// Routes registers the ledger endpoints on the given (authenticated) router.
func (s *LedgerService) Routes(r *mux.Router) {
	r.HandleFunc("/transactions", s.ListTransactions).Methods(http.MethodGet)
	r.HandleFunc("/transactions", s.CreateTransaction).Methods(http.MethodPost)
	r.HandleFunc("/transactions/{id}", s.DeleteTransaction).Methods(http.MethodDelete)
	r.HandleFunc("/settle", s.SettleUp).Methods(http.MethodPost)

	r.HandleFunc("/friends", s.ListFriends).Methods(http.MethodGet)
	r.HandleFunc("/friends", s.CreateFriend).Methods(http.MethodPost)
	r.HandleFunc("/friends/{id}", s.GetFriend).Methods(http.MethodGet)
	r.HandleFunc("/friends/{id}", s.UpdateFriend).Methods(http.MethodPut)
	r.HandleFunc("/friends/{id}", s.DeleteFriend).Methods(http.MethodDelete)

	r.HandleFunc("/summary", s.Summary).Methods(http.MethodGet)
	r.HandleFunc("/chart/debt-origins", s.DebtOrigins).Methods(http.MethodGet)
	r.HandleFunc("/history", s.History).Methods(http.MethodGet)
}

// toEngine converts stored transactions to the engine's value type.
func toEngine(txs []models.Transaction) []calculator.Transaction {
	out := make([]calculator.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = calculator.Transaction{
			ID:           tx.ID,
			Amount:       tx.Amount,
			Date:         tx.Date,
			Type:         tx.Type,
			PayerID:      tx.PayerID,
			FriendID:     tx.FriendID,
			IsSettlement: tx.IsSettlement,
		}
	}
	return out
}

// loadLedger fetches the owner's full transaction list plus its engine view.
func (s *LedgerService) loadLedger(r *http.Request) ([]models.Transaction, []calculator.Transaction, error) {
	ownerID := middleware.GetUserID(r.Context())
	txs, err := s.store.ListTransactions(r.Context(), ownerID)
	if err != nil {
		return nil, nil, err
	}
	return txs, toEngine(txs), nil
}

// friendView assembles the derived view for one friend from the full
// transaction list.
func friendView(friend models.Friend, engineTxs []calculator.Transaction) models.FriendView {
	balance := calculator.FriendBalance(friend.ID, engineTxs)
	status := models.StatusActive
	if calculator.IsSettled(balance) {
		status = models.StatusSettled
	}
	return models.FriendView{
		Friend:       friend,
		Balance:      balance,
		LastActivity: calculator.LastActivity(friend.ID, engineTxs),
		Status:       status,
	}
}

// ListTransactions returns the owner's transactions, newest first.
func (s *LedgerService) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, _, err := s.loadLedger(r)
	if err != nil {
		slog.Error("ListTransactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

type createTransactionRequest struct {
	Title        string  `json:"title"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	PayerID      string  `json:"payerId"`
	FriendID     string  `json:"friendId"`
	IsSettlement bool    `json:"isSettlement"`
	Note         string  `json:"note"`
}

// CreateTransaction records a new expense or settlement.
func (s *LedgerService) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if (req.PayerID == models.Me) == (req.FriendID == models.Me) {
		writeError(w, http.StatusBadRequest, "exactly one party must be \"me\"")
		return
	}

	tx := &models.Transaction{
		OwnerID:      middleware.GetUserID(r.Context()),
		Title:        req.Title,
		Amount:       req.Amount,
		Date:         req.Date,
		Type:         req.Type,
		PayerID:      req.PayerID,
		FriendID:     req.FriendID,
		IsSettlement: req.IsSettlement,
		Note:         req.Note,
	}
	if err := s.store.CreateTransaction(r.Context(), tx); err != nil {
		slog.Error("CreateTransaction failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create transaction")
		return
	}

	slog.Info("Transaction created", "transaction_id", tx.ID, "settlement", tx.IsSettlement)
	writeJSON(w, http.StatusCreated, tx)
}

// DeleteTransaction removes a transaction. Edits are modeled as delete +
// recreate by the client.
func (s *LedgerService) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	txID := mux.Vars(r)["id"]
	ownerID := middleware.GetUserID(r.Context())

	if err := s.store.DeleteTransaction(r.Context(), ownerID, txID); err != nil {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}

	slog.Info("Transaction deleted", "transaction_id", txID)
	writeJSON(w, http.StatusOK, map[string]string{"deleted": txID})
}

type settleRequest struct {
	FriendID string  `json:"friendId"`
	Amount   float64 `json:"amount"`
	PayerID  string  `json:"payerId"` // who is paying: "me" or the friend
	Date     string  `json:"date"`
	Note     string  `json:"note"`
}

// SettleUp records a balance-clearing payment between the user and a
// friend. It is stored as an ordinary transaction with the settlement flag;
// the engine's replay derives the gray-out from it, so nothing else is
// marked.
func (s *LedgerService) SettleUp(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FriendID == "" || req.FriendID == models.Me {
		writeError(w, http.StatusBadRequest, "friendId required")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	payerID, friendID := req.PayerID, req.FriendID
	if payerID == models.Me {
		// User pays the friend back.
		friendID = req.FriendID
	} else {
		// Friend pays the user: payer is the friend, other side is "me".
		payerID = req.FriendID
		friendID = models.Me
	}

	tx := &models.Transaction{
		OwnerID:      middleware.GetUserID(r.Context()),
		Title:        "Settle up",
		Amount:       req.Amount,
		Date:         req.Date,
		Type:         "Settlement",
		PayerID:      payerID,
		FriendID:     friendID,
		IsSettlement: true,
		Note:         req.Note,
	}
	if err := s.store.CreateTransaction(r.Context(), tx); err != nil {
		slog.Error("SettleUp failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record settlement")
		return
	}

	slog.Info("Settlement recorded", "transaction_id", tx.ID, "amount", tx.Amount)
	writeJSON(w, http.StatusCreated, tx)
}

// ListFriends returns every friend with freshly derived balance, recency
// and status.
func (s *LedgerService) ListFriends(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	friends, err := s.store.ListFriends(r.Context(), ownerID)
	if err != nil {
		slog.Error("ListFriends failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list friends")
		return
	}

	_, engineTxs, err := s.loadLedger(r)
	if err != nil {
		slog.Error("ListFriends failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list friends")
		return
	}

	views := make([]models.FriendView, len(friends))
	for i, friend := range friends {
		views[i] = friendView(friend, engineTxs)
	}
	writeJSON(w, http.StatusOK, views)
}

type createFriendRequest struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Avatar string `json:"avatar"`
}

// CreateFriend adds a friend. New friends start with no transactions, so
// their derived balance is zero by construction.
func (s *LedgerService) CreateFriend(w http.ResponseWriter, r *http.Request) {
	var req createFriendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}

	friend := &models.Friend{
		OwnerID: middleware.GetUserID(r.Context()),
		Name:    req.Name,
		Handle:  req.Handle,
		Avatar:  req.Avatar,
	}
	if err := s.store.CreateFriend(r.Context(), friend); err != nil {
		slog.Error("CreateFriend failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create friend")
		return
	}

	slog.Info("Friend created", "friend_id", friend.ID)
	writeJSON(w, http.StatusCreated, friendView(*friend, nil))
}

// transactionDetail is a transaction plus its derived gray-out flag.
type transactionDetail struct {
	models.Transaction
	Grayed bool `json:"grayed"`
}

type friendDetailResponse struct {
	models.FriendView
	Transactions []transactionDetail `json:"transactions"`
}

// GetFriend returns the friend detail view: the derived balance (always
// recomputed, never a stored copy) and their transactions with gray-out
// flags from the settlement replay.
func (s *LedgerService) GetFriend(w http.ResponseWriter, r *http.Request) {
	friendID := mux.Vars(r)["id"]
	ownerID := middleware.GetUserID(r.Context())

	friend, err := s.store.GetFriend(r.Context(), ownerID, friendID)
	if err != nil {
		writeError(w, http.StatusNotFound, "friend not found")
		return
	}

	txs, engineTxs, err := s.loadLedger(r)
	if err != nil {
		slog.Error("GetFriend failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load ledger")
		return
	}

	details := []transactionDetail{}
	for i, tx := range txs {
		if tx.PayerID != friendID && tx.FriendID != friendID {
			continue
		}
		details = append(details, transactionDetail{
			Transaction: tx,
			Grayed:      calculator.ShouldGray(engineTxs[i], friendID, engineTxs),
		})
	}

	writeJSON(w, http.StatusOK, friendDetailResponse{
		FriendView:   friendView(*friend, engineTxs),
		Transactions: details,
	})
}

// UpdateFriend changes display fields only; balances cannot be written.
func (s *LedgerService) UpdateFriend(w http.ResponseWriter, r *http.Request) {
	var req createFriendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	friend := &models.Friend{
		ID:      mux.Vars(r)["id"],
		OwnerID: middleware.GetUserID(r.Context()),
		Name:    req.Name,
		Handle:  req.Handle,
		Avatar:  req.Avatar,
	}
	if err := s.store.UpdateFriend(r.Context(), friend); err != nil {
		writeError(w, http.StatusNotFound, "friend not found")
		return
	}

	slog.Info("Friend updated", "friend_id", friend.ID)

	_, engineTxs, err := s.loadLedger(r)
	if err != nil {
		slog.Error("UpdateFriend failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load ledger")
		return
	}
	writeJSON(w, http.StatusOK, friendView(*friend, engineTxs))
}

// DeleteFriend removes a friend and their transaction history.
func (s *LedgerService) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	friendID := mux.Vars(r)["id"]
	ownerID := middleware.GetUserID(r.Context())

	if err := s.store.DeleteFriend(r.Context(), ownerID, friendID); err != nil {
		writeError(w, http.StatusNotFound, "friend not found")
		return
	}

	slog.Info("Friend deleted", "friend_id", friendID)
	writeJSON(w, http.StatusOK, map[string]string{"deleted": friendID})
}

type summaryResponse struct {
	TotalOwed  float64 `json:"totalOwed"`
	TotalOwing float64 `json:"totalOwing"`
	NetBalance float64 `json:"netBalance"`
}

// Summary returns the home-screen rollups.
func (s *LedgerService) Summary(w http.ResponseWriter, r *http.Request) {
	_, engineTxs, err := s.loadLedger(r)
	if err != nil {
		slog.Error("Summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load ledger")
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		TotalOwed:  calculator.TotalOwed(engineTxs),
		TotalOwing: calculator.TotalOwing(engineTxs),
		NetBalance: calculator.NetBalance(engineTxs),
	})
}

// DebtOrigins returns the category breakdown for the home-screen chart. An
// empty array means "no chart data", not an error.
func (s *LedgerService) DebtOrigins(w http.ResponseWriter, r *http.Request) {
	_, engineTxs, err := s.loadLedger(r)
	if err != nil {
		slog.Error("DebtOrigins failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load ledger")
		return
	}

	writeJSON(w, http.StatusOK, calculator.DebtOrigins(engineTxs))
}

type historyGroup struct {
	Label        string               `json:"label"`
	Transactions []models.Transaction `json:"transactions"`
}

// History returns transactions grouped into date buckets for the history
// screen.
func (s *LedgerService) History(w http.ResponseWriter, r *http.Request) {
	txs, engineTxs, err := s.loadLedger(r)
	if err != nil {
		slog.Error("History failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load ledger")
		return
	}

	byID := make(map[string]models.Transaction, len(txs))
	for _, tx := range txs {
		byID[tx.ID] = tx
	}

	groups := []historyGroup{}
	for _, g := range calculator.GroupByDate(engineTxs) {
		full := make([]models.Transaction, len(g.Transactions))
		for i, tx := range g.Transactions {
			full[i] = byID[tx.ID]
		}
		groups = append(groups, historyGroup{Label: g.Label, Transactions: full})
	}

	writeJSON(w, http.StatusOK, groups)
}

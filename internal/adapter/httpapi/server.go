package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/example/storefront-state/internal/config"
	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/facade"
	"github.com/example/storefront-state/internal/state/account"
	"github.com/example/storefront-state/internal/store"
	"github.com/example/storefront-state/internal/usecase"
	"github.com/gorilla/mux"
)

// readTimeout ограничивает ожидание первого значения потока.
const readTimeout = 2 * time.Second

// Deps собирает зависимости HTTP-адаптера.
type Deps struct {
	Account  *facade.AccountFacade
	Quoting  *facade.QuotingFacade
	Settings *config.GlobalConfiguration
	View     usecase.GetView
	Actions  store.Stream[store.Envelope]
	Metrics  http.Handler
	// записывающих запросов в секунду на клиента, 0 отключает ограничение
	WriteRateLimit float64
}

type Server struct {
	Router *mux.Router
	deps   Deps
}

func NewServer(d Deps) *Server {
	s := &Server{Router: mux.NewRouter(), deps: d}
	r := s.Router

	r.HandleFunc("/api/state/{slice}", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/api/settings", s.handleSettings).Methods(http.MethodGet)
	r.HandleFunc("/api/account/user", s.handleUser).Methods(http.MethodGet)
	r.HandleFunc("/api/account/orders", s.handleOrders).Methods(http.MethodGet)
	r.HandleFunc("/api/account/payment-methods", s.handlePaymentMethods).Methods(http.MethodGet)
	r.HandleFunc("/api/account/addresses", s.handleAddresses).Methods(http.MethodGet)
	r.HandleFunc("/api/quoting/items", s.handleQuotingItems).Methods(http.MethodGet)
	r.HandleFunc("/api/quoting/quotes", s.handleQuotes).Methods(http.MethodGet)
	r.HandleFunc("/api/quoting/requests", s.handleQuoteRequests).Methods(http.MethodGet)
	r.HandleFunc("/ws/account/errors", s.handleUserErrors)
	r.HandleFunc("/ws/actions", s.handleActions)
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics).Methods(http.MethodGet)
	}

	w := r.NewRoute().Subrouter()
	if d.WriteRateLimit > 0 {
		w.Use(newWriteLimiter(d.WriteRateLimit, int(d.WriteRateLimit)+1).Middleware)
	}
	w.HandleFunc("/api/account/login", s.handleLogin).Methods(http.MethodPost)
	w.HandleFunc("/api/account/token", s.handleLoginWithToken).Methods(http.MethodPost)
	w.HandleFunc("/api/account/logout", s.handleLogout).Methods(http.MethodPost)
	w.HandleFunc("/api/account/profile", s.handleUpdateProfile).Methods(http.MethodPut)
	w.HandleFunc("/api/account/password", s.handleUpdatePassword).Methods(http.MethodPut)
	w.HandleFunc("/api/account/password-reminder", s.handlePasswordReminder).Methods(http.MethodPost)
	w.HandleFunc("/api/account/preferred-payment-method", s.handlePreferredPaymentMethod).Methods(http.MethodPut)
	w.HandleFunc("/api/account/payment-instruments/{id}", s.handleDeletePaymentInstrument).Methods(http.MethodDelete)
	w.HandleFunc("/api/account/addresses", s.handleCreateAddress).Methods(http.MethodPost)
	w.HandleFunc("/api/account/addresses/{id}", s.handleUpdateAddress).Methods(http.MethodPut)
	w.HandleFunc("/api/account/addresses/{id}", s.handleDeleteAddress).Methods(http.MethodDelete)
	w.HandleFunc("/api/quoting/items/{type}/{id}", s.handleDeleteQuotingItem).Methods(http.MethodDelete)
	w.HandleFunc("/api/quoting/quotes/{id}/reject", s.handleRejectQuote).Methods(http.MethodPost)
	w.HandleFunc("/api/quoting/quotes/{id}/basket", s.handleQuoteToBasket).Methods(http.MethodPost)
	w.HandleFunc("/api/quoting/requests/products", s.handleAddProduct).Methods(http.MethodPost)
	w.HandleFunc("/api/quoting/requests/{id}", s.handleUpdateQuoteRequest).Methods(http.MethodPatch)
	w.HandleFunc("/api/quoting/requests/{id}/submit", s.handleSubmitQuoteRequest).Methods(http.MethodPost)
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func accepted(w http.ResponseWriter) {
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return false
	}
	return true
}

// current отдаёт текущее значение потока.
func current[V any](w http.ResponseWriter, r *http.Request, s store.Stream[V]) (V, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	v, err := s.First(ctx)
	if err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		writeError(w, status, err.Error())
		return v, false
	}
	return v, true
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	v, ok := s.deps.View.Execute(mux.Vars(r)["slice"])
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	if v, ok := current(w, r, s.deps.Settings.ApplicationSettings()); ok {
		writeJSON(w, http.StatusOK, v)
	}
}

// ACCOUNT

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	u, ok := current(w, r, s.deps.Account.User())
	if !ok {
		return
	}
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var c domain.Credentials
	if !decode(w, r, &c) {
		return
	}
	if c.Login == "" {
		writeError(w, http.StatusBadRequest, domain.ErrValidation.Error())
		return
	}
	s.deps.Account.LoginUser(c)
	accepted(w)
}

func (s *Server) handleLoginWithToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if !decode(w, r, &body) {
		return
	}
	s.deps.Account.LoginUserWithToken(body.Token)
	accepted(w)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	opts := facade.LogoutOptions{RevokeAPIToken: true}
	if v := r.URL.Query().Get("revoke"); v != "" {
		revoke, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "revoke must be a boolean")
			return
		}
		opts.RevokeAPIToken = revoke
	}
	s.deps.Account.LogoutUser(opts)
	accepted(w)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var u domain.User
	if !decode(w, r, &u) {
		return
	}
	s.deps.Account.UpdateUserProfile(u)
	accepted(w)
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var p domain.PasswordChange
	if !decode(w, r, &p) {
		return
	}
	s.deps.Account.UpdateUserPassword(p)
	accepted(w)
}

func (s *Server) handlePasswordReminder(w http.ResponseWriter, r *http.Request) {
	var p domain.PasswordReminder
	if !decode(w, r, &p) {
		return
	}
	s.deps.Account.RequestPasswordReminder(p)
	accepted(w)
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	var query *domain.OrderListQuery
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		query = &domain.OrderListQuery{Limit: limit, Include: r.URL.Query()["include"]}
	}
	if orders, ok := current(w, r, s.deps.Account.Orders(query)); ok {
		writeJSON(w, http.StatusOK, orders)
	}
}

func (s *Server) handlePaymentMethods(w http.ResponseWriter, r *http.Request) {
	if methods, ok := current(w, r, s.deps.Account.PaymentMethods()); ok {
		writeJSON(w, http.StatusOK, methods)
	}
}

// handlePreferredPaymentMethod берёт пользователя и его текущий предпочтительный
// инструмент из состояния.
func (s *Server) handlePreferredPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PaymentMethodID string `json:"paymentMethodId"`
	}
	if !decode(w, r, &body) {
		return
	}
	acc := s.deps.View.Source.State().Account
	user := account.GetLoggedInUser(acc)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	var currentInstrument *domain.PaymentInstrument
	for _, m := range account.GetUserPaymentMethods(acc) {
		for i := range m.PaymentInstruments {
			if m.PaymentInstruments[i].ID == user.PreferredPaymentInstrumentID {
				pi := m.PaymentInstruments[i]
				currentInstrument = &pi
			}
		}
	}
	s.deps.Account.UpdateUserPreferredPaymentMethod(*user, body.PaymentMethodID, currentInstrument)
	accepted(w)
}

func (s *Server) handleDeletePaymentInstrument(w http.ResponseWriter, r *http.Request) {
	s.deps.Account.DeletePaymentInstrument(mux.Vars(r)["id"], nil)
	accepted(w)
}

func (s *Server) handleAddresses(w http.ResponseWriter, r *http.Request) {
	loggedIn, ok := current(w, r, s.deps.Account.IsLoggedIn())
	if !ok {
		return
	}
	if !loggedIn {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	if list, ok := current(w, r, s.deps.Account.Addresses()); ok {
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	var a domain.Address
	if !decode(w, r, &a) {
		return
	}
	s.deps.Account.CreateCustomerAddress(a)
	accepted(w)
}

func (s *Server) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	var a domain.Address
	if !decode(w, r, &a) {
		return
	}
	a.ID = mux.Vars(r)["id"]
	s.deps.Account.UpdateCustomerAddress(a)
	accepted(w)
}

func (s *Server) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	s.deps.Account.DeleteCustomerAddress(mux.Vars(r)["id"])
	accepted(w)
}

// QUOTING

func (s *Server) handleQuotingItems(w http.ResponseWriter, r *http.Request) {
	if items, ok := current(w, r, s.deps.Quoting.QuotesAndQuoteRequests()); ok {
		writeJSON(w, http.StatusOK, items)
	}
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	if quotes, ok := current(w, r, s.deps.Quoting.Quotes()); ok {
		writeJSON(w, http.StatusOK, quotes)
	}
}

func (s *Server) handleQuoteRequests(w http.ResponseWriter, r *http.Request) {
	if requests, ok := current(w, r, s.deps.Quoting.QuoteRequests()); ok {
		writeJSON(w, http.StatusOK, requests)
	}
}

func (s *Server) handleDeleteQuotingItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item domain.QuotingEntity
	switch vars["type"] {
	case domain.QuoteType:
		item = domain.Quote{ID: vars["id"]}
	case domain.QuoteRequestType:
		item = domain.QuoteRequest{ID: vars["id"]}
	default:
		writeError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return
	}
	s.deps.Quoting.DeleteQuoteOrRequest(item)
	accepted(w)
}

// handleRejectQuote выбирает котировку и отклоняет её.
func (s *Server) handleRejectQuote(w http.ResponseWriter, r *http.Request) {
	s.deps.Quoting.SelectQuote(mux.Vars(r)["id"])
	s.deps.Quoting.RejectQuote()
	accepted(w)
}

func (s *Server) handleQuoteToBasket(w http.ResponseWriter, r *http.Request) {
	s.deps.Quoting.AddQuoteToBasket(mux.Vars(r)["id"])
	accepted(w)
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SKU      string `json:"sku"`
		Quantity int    `json:"quantity"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.SKU == "" || body.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, domain.ErrValidation.Error())
		return
	}
	s.deps.Quoting.AddProductToQuoteRequest(body.SKU, body.Quantity)
	accepted(w)
}

func (s *Server) handleUpdateQuoteRequest(w http.ResponseWriter, r *http.Request) {
	var update domain.QuoteRequestUpdate
	if !decode(w, r, &update) {
		return
	}
	s.deps.Quoting.SelectQuoteRequest(mux.Vars(r)["id"])
	s.deps.Quoting.UpdateQuoteRequest(update)
	accepted(w)
}

func (s *Server) handleSubmitQuoteRequest(w http.ResponseWriter, r *http.Request) {
	s.deps.Quoting.SelectQuoteRequest(mux.Vars(r)["id"])
	s.deps.Quoting.SubmitQuoteRequest()
	accepted(w)
}

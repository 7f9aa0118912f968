// Package api exposes the ingress surfaces: REST handlers, the WebSocket
// event feed and the gRPC service. All three validate through pkg/validation
// and mutate through the registry, none of them touch engine state directly.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/parcelops/dispatch/modules/registry"
	"github.com/parcelops/dispatch/pkg/model"
	"github.com/parcelops/dispatch/pkg/validation"
)

// staticDir is served for unmatched routes when it exists.
const staticDir = "./static"

type API struct {
	reg    *registry.Registry
	logger log.Logger
}

func New(reg *registry.Registry, logger log.Logger) *API {
	return &API{
		reg:    reg,
		logger: logger,
	}
}

// Routes builds the HTTP routing table.
func (a *API) Routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/couriers", a.CreateCourierHandler).Methods(http.MethodPost)
	r.HandleFunc("/couriers", a.ListCouriersHandler).Methods(http.MethodGet)
	r.HandleFunc("/couriers/{id}/status", a.UpdateCourierStatusHandler).Methods(http.MethodPatch)
	r.HandleFunc("/couriers/{id}/location", a.UpdateCourierLocationHandler).Methods(http.MethodPatch)
	r.HandleFunc("/orders", a.CreateOrderHandler).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id}", a.GetOrderHandler).Methods(http.MethodGet)
	r.HandleFunc("/assignments", a.ListAssignmentsHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", a.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/ws", a.WatchAssignmentsHandler).Methods(http.MethodGet)

	if fi, err := os.Stat(staticDir); err == nil && fi.IsDir() {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}

	return r
}

type createCourierRequest struct {
	Name     string          `json:"name"`
	Location *model.GeoPoint `json:"location"`
	Capacity int             `json:"capacity"`
	Rating   float64         `json:"rating"`
}

func (a *API) CreateCourierHandler(w http.ResponseWriter, req *http.Request) {
	var body createCourierRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	name, capacity, err := validation.Courier(body.Name, body.Capacity, body.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	courier := model.Courier{
		ID:          uuid.New(),
		Name:        name,
		Location:    *body.Location,
		Capacity:    capacity,
		CurrentLoad: 0,
		Status:      model.CourierAvailable,
		Rating:      validation.ClampRating(body.Rating),
		UpdatedAt:   time.Now().UTC(),
	}
	a.reg.Couriers.Put(courier.ID, courier)

	writeJSON(w, http.StatusOK, courier)
}

func (a *API) ListCouriersHandler(w http.ResponseWriter, _ *http.Request) {
	couriers := []model.Courier{}
	a.reg.Couriers.Range(func(_ uuid.UUID, c model.Courier) bool {
		couriers = append(couriers, c)
		return true
	})
	writeJSON(w, http.StatusOK, couriers)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (a *API) UpdateCourierStatusHandler(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid courier id: %w", err))
		return
	}

	var body updateStatusRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	courierStatus, err := model.ParseCourierStatus(body.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var updated model.Courier
	ok := a.reg.Couriers.Update(id, func(c *model.Courier) {
		c.Status = courierStatus
		c.UpdatedAt = time.Now().UTC()
		updated = *c
	})
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("courier %s not found", id))
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type updateLocationRequest struct {
	Location *model.GeoPoint `json:"location"`
}

func (a *API) UpdateCourierLocationHandler(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid courier id: %w", err))
		return
	}

	var body updateLocationRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Location == nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("location is required"))
		return
	}

	var updated model.Courier
	ok := a.reg.Couriers.Update(id, func(c *model.Courier) {
		c.Location = *body.Location
		c.UpdatedAt = time.Now().UTC()
		updated = *c
	})
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("courier %s not found", id))
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type createOrderRequest struct {
	Pickup   *model.GeoPoint `json:"pickup"`
	Dropoff  *model.GeoPoint `json:"dropoff"`
	Priority string          `json:"priority"`
}

func (a *API) CreateOrderHandler(w http.ResponseWriter, req *http.Request) {
	var body createOrderRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	priority, err := validation.Order(body.Pickup, body.Dropoff, body.Priority)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	order := model.Order{
		ID:        uuid.New(),
		Pickup:    *body.Pickup,
		Dropoff:   *body.Dropoff,
		Priority:  priority,
		Status:    model.OrderPending,
		CreatedAt: time.Now().UTC(),
	}
	a.reg.Orders.Put(order.ID, order)

	if err := a.reg.EnqueueOrder(req.Context(), order); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (a *API) GetOrderHandler(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid order id: %w", err))
		return
	}

	order, ok := a.reg.Orders.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("order %s not found", id))
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (a *API) ListAssignmentsHandler(w http.ResponseWriter, _ *http.Request) {
	assignments := []model.Assignment{}
	a.reg.Assignments.Range(func(_ uuid.UUID, as model.Assignment) bool {
		assignments = append(assignments, as)
		return true
	})
	writeJSON(w, http.StatusOK, assignments)
}

type healthResponse struct {
	Status      string `json:"status"`
	Couriers    int    `json:"couriers"`
	Orders      int    `json:"orders"`
	Assignments int    `json:"assignments"`
}

func (a *API) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Couriers:    a.reg.Couriers.Len(),
		Orders:      a.reg.Orders.Len(),
		Assignments: a.reg.Assignments.Len(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	// error messages carry characters like '>' verbatim
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

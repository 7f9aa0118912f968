package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/gorilla/websocket"
	"github.com/grafana/dskit/services"
	"github.com/stretchr/testify/require"

	"github.com/parcelops/dispatch/modules/engine"
	"github.com/parcelops/dispatch/modules/registry"
	"github.com/parcelops/dispatch/pkg/model"
)

func newTestServer(t *testing.T) (*httptest.Server, *registry.Registry) {
	reg := registry.New(registry.Config{OrderQueueSize: 64, EventBufferSize: 64})
	eng := engine.New(reg, log.NewNopLogger())
	require.NoError(t, services.StartAndAwaitRunning(context.Background(), eng))
	t.Cleanup(func() {
		reg.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, services.StopAndAwaitTerminated(ctx, eng))
	})

	srv := httptest.NewServer(New(reg, log.NewNopLogger()).Routes())
	t.Cleanup(srv.Close)

	return srv, reg
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, raw
}

func createCourier(t *testing.T, srv *httptest.Server, name string, capacity int, rating float64) model.Courier {
	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/couriers", map[string]any{
		"name":     name,
		"location": map[string]float64{"lat": 52.52, "lng": 13.405},
		"capacity": capacity,
		"rating":   rating,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var courier model.Courier
	require.NoError(t, json.Unmarshal(raw, &courier))
	return courier
}

func createOrder(t *testing.T, srv *httptest.Server, priority string) model.Order {
	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/orders", map[string]any{
		"pickup":   map[string]float64{"lat": 52.51, "lng": 13.39},
		"dropoff":  map[string]float64{"lat": 52.54, "lng": 13.42},
		"priority": priority,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var order model.Order
	require.NoError(t, json.Unmarshal(raw, &order))
	return order
}

func TestHealthStartsWithZeroCounts(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status      string `json:"status"`
		Couriers    int    `json:"couriers"`
		Orders      int    `json:"orders"`
		Assignments int    `json:"assignments"`
	}
	require.NoError(t, json.Unmarshal(raw, &health))
	require.Equal(t, "ok", health.Status)
	require.Zero(t, health.Couriers)
	require.Zero(t, health.Orders)
	require.Zero(t, health.Assignments)
}

func TestCreateCourierClampsRating(t *testing.T) {
	srv, _ := newTestServer(t)

	courier := createCourier(t, srv, "ada", 3, 9.9)
	require.Equal(t, 5.0, courier.Rating)
	require.Equal(t, model.CourierAvailable, courier.Status)
	require.Zero(t, courier.CurrentLoad)
	require.NotEmpty(t, courier.ID)
}

func TestCreateCourierValidationFailures(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/couriers", map[string]any{
		"name":     "   ",
		"location": map[string]float64{"lat": 0, "lng": 0},
		"capacity": 3,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(raw), "name cannot be empty")

	resp, raw = doJSON(t, http.MethodPost, srv.URL+"/couriers", map[string]any{
		"name":     "ada",
		"location": map[string]float64{"lat": 0, "lng": 0},
		"capacity": 0,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(raw), "capacity must be > 0")
	// '>' must not be HTML-escaped in error bodies
	require.Equal(t, "{\"error\":\"capacity must be > 0\"}\n", string(raw))
}

func TestCreateOrderRejectsUnknownPriority(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/orders", map[string]any{
		"pickup":   map[string]float64{"lat": 0, "lng": 0},
		"dropoff":  map[string]float64{"lat": 1, "lng": 1},
		"priority": "Whenever",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(raw), "unknown priority")
}

func TestFullRESTFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	courier := createCourier(t, srv, "ada", 3, 4.8)
	order := createOrder(t, srv, "Urgent")
	require.Equal(t, model.OrderPending, order.Status)

	require.Eventually(t, func() bool {
		_, raw := doJSON(t, http.MethodGet, srv.URL+"/orders/"+order.ID.String(), nil)
		var fetched model.Order
		require.NoError(t, json.Unmarshal(raw, &fetched))
		return fetched.Status == model.OrderAssigned
	}, 2*time.Second, 10*time.Millisecond)

	_, raw := doJSON(t, http.MethodGet, srv.URL+"/orders/"+order.ID.String(), nil)
	var assigned model.Order
	require.NoError(t, json.Unmarshal(raw, &assigned))
	require.NotNil(t, assigned.AssignedCourier)
	require.Equal(t, courier.ID, *assigned.AssignedCourier)

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/assignments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var assignments []model.Assignment
	require.NoError(t, json.Unmarshal(raw, &assignments))
	require.Len(t, assignments, 1)
	require.Equal(t, order.ID, assignments[0].OrderID)
	require.Equal(t, courier.ID, assignments[0].CourierID)

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/couriers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var couriers []model.Courier
	require.NoError(t, json.Unmarshal(raw, &couriers))
	require.Len(t, couriers, 1)
	require.Equal(t, uint8(1), couriers[0].CurrentLoad)
}

func TestPatchCourierStatusAndLocation(t *testing.T) {
	srv, _ := newTestServer(t)

	courier := createCourier(t, srv, "ada", 3, 4.0)

	resp, raw := doJSON(t, http.MethodPatch, srv.URL+"/couriers/"+courier.ID.String()+"/status", map[string]string{
		"status": "Offline",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Courier
	require.NoError(t, json.Unmarshal(raw, &updated))
	require.Equal(t, model.CourierOffline, updated.Status)
	require.True(t, updated.UpdatedAt.After(courier.UpdatedAt) || updated.UpdatedAt.Equal(courier.UpdatedAt))

	resp, raw = doJSON(t, http.MethodPatch, srv.URL+"/couriers/"+courier.ID.String()+"/location", map[string]any{
		"location": map[string]float64{"lat": 48.85, "lng": 2.35},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &updated))
	require.Equal(t, 48.85, updated.Location.Lat)
	require.Equal(t, 2.35, updated.Location.Lng)

	resp, _ = doJSON(t, http.MethodPatch, srv.URL+"/couriers/"+courier.ID.String()+"/status", map[string]string{
		"status": "Sleeping",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownEntityReturns404(t *testing.T) {
	srv, _ := newTestServer(t)

	missing := "00000000-0000-0000-0000-000000000001"

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/orders/"+missing, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, string(raw), fmt.Sprintf("order %s not found", missing))

	resp, raw = doJSON(t, http.MethodPatch, srv.URL+"/couriers/"+missing+"/status", map[string]string{
		"status": "Busy",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, string(raw), fmt.Sprintf("courier %s not found", missing))
}

func TestMetricsEndpointServesPrometheusText(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/plain; version=0.0.4")
	require.Contains(t, string(raw), "orders_in_queue")
}

func TestWebSocketStreamsAssignments(t *testing.T) {
	srv, _ := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	createCourier(t, srv, "ada", 3, 4.8)
	order := createOrder(t, srv, "High")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event model.Assignment
	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, order.ID, event.OrderID)
	require.Greater(t, event.Score, 0.0)
}

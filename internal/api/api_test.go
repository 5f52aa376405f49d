package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tejavath/vaanibill/internal/models"
	"github.com/tejavath/vaanibill/internal/storage/sqlite"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	server := httptest.NewServer(NewRouter(store, "/api", ""))
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func createItem(t *testing.T, server *httptest.Server, name, price string) models.Item {
	t.Helper()
	resp := do(t, http.MethodPost, server.URL+"/api/items", map[string]any{
		"name":  name,
		"price": json.RawMessage(price),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var item models.Item
	decode(t, resp, &item)
	return item
}

func TestItemEndpoints(t *testing.T) {
	server := newTestServer(t)

	tomato := createItem(t, server, "టమాటా", "40")
	require.NotEmpty(t, tomato.ID)
	require.True(t, tomato.Price.Equal(d("40")))
	createItem(t, server, "ఉల్లిపాయలు", "30")

	t.Run("list is sorted by name", func(t *testing.T) {
		resp := do(t, http.MethodGet, server.URL+"/api/items", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var items []models.Item
		decode(t, resp, &items)
		require.Len(t, items, 2)
		require.Equal(t, "ఉల్లిపాయలు", items[0].Name)
		require.Equal(t, "టమాటా", items[1].Name)
	})

	t.Run("create rejects invalid input", func(t *testing.T) {
		resp := do(t, http.MethodPost, server.URL+"/api/items", map[string]any{
			"name": "", "price": 10,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var env struct {
			Error string `json:"error"`
		}
		decode(t, resp, &env)
		require.NotEmpty(t, env.Error)
	})

	t.Run("patch updates price", func(t *testing.T) {
		resp := do(t, http.MethodPatch, server.URL+"/api/items/"+tomato.ID, map[string]any{
			"price": 45,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var item models.Item
		decode(t, resp, &item)
		require.Equal(t, "టమాటా", item.Name)
		require.True(t, item.Price.Equal(d("45")))
	})

	t.Run("patch unknown id is 404", func(t *testing.T) {
		resp := do(t, http.MethodPatch, server.URL+"/api/items/no-such-id", map[string]any{
			"price": 45,
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("patch negative price is 400", func(t *testing.T) {
		resp := do(t, http.MethodPatch, server.URL+"/api/items/"+tomato.ID, map[string]any{
			"price": -1,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("delete responds with success envelope", func(t *testing.T) {
		resp := do(t, http.MethodDelete, server.URL+"/api/items/"+tomato.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]bool
		decode(t, resp, &body)
		require.True(t, body["success"])
	})
}

func billPayload(billNumber string, total string, items ...map[string]any) map[string]any {
	return map[string]any{
		"bill": map[string]any{
			"billNumber":  billNumber,
			"totalAmount": json.RawMessage(total),
		},
		"items": items,
	}
}

func lineItem(id, name string, qty, price, total string) map[string]any {
	return map[string]any{
		"itemId":   id,
		"itemName": name,
		"quantity": json.RawMessage(qty),
		"price":    json.RawMessage(price),
		"total":    json.RawMessage(total),
	}
}

func TestBillEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("create commits bill with lines", func(t *testing.T) {
		resp := do(t, http.MethodPost, server.URL+"/api/bills", billPayload("B001234", "205",
			lineItem("1", "టమాటా", "2.5", "40", "100"),
			lineItem("2", "ఉల్లిపాయలు", "1", "30", "30"),
			lineItem("3", "బంగాళాదుంప", "3", "25", "75"),
		))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var bill models.Bill
		decode(t, resp, &bill)
		require.NotEmpty(t, bill.ID)
		require.Equal(t, "B001234", bill.BillNumber)
		require.True(t, bill.TotalAmount.Equal(d("205")))
		require.NotEmpty(t, bill.BillDate)

		linesResp := do(t, http.MethodGet, server.URL+"/api/bills/"+bill.ID+"/items", nil)
		require.Equal(t, http.StatusOK, linesResp.StatusCode)
		var lines []models.BillLine
		decode(t, linesResp, &lines)
		require.Len(t, lines, 3)
		require.Equal(t, "టమాటా", lines[0].ItemName)
		require.True(t, lines[0].Total.Equal(d("100")))
	})

	t.Run("create assigns a bill number when omitted", func(t *testing.T) {
		resp := do(t, http.MethodPost, server.URL+"/api/bills", billPayload("", "40",
			lineItem("1", "టమాటా", "1", "40", "40"),
		))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var bill models.Bill
		decode(t, resp, &bill)
		require.True(t, strings.HasPrefix(bill.BillNumber, "B"))
		require.Len(t, bill.BillNumber, 7)
	})

	t.Run("empty line list is rejected before any write", func(t *testing.T) {
		before := listBills(t, server, "")

		resp := do(t, http.MethodPost, server.URL+"/api/bills", billPayload("B009999", "0"))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()

		require.Len(t, listBills(t, server, ""), len(before))
	})

	t.Run("mismatched totals are rejected", func(t *testing.T) {
		resp := do(t, http.MethodPost, server.URL+"/api/bills", billPayload("B009998", "500",
			lineItem("1", "టమాటా", "1", "40", "40"),
		))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()

		resp = do(t, http.MethodPost, server.URL+"/api/bills", billPayload("B009997", "40",
			lineItem("1", "టమాటా", "1", "40", "99"),
		))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("history filters by date", func(t *testing.T) {
		all := listBills(t, server, "")
		require.NotEmpty(t, all)
		today := all[0].BillDate

		filtered := listBills(t, server, today)
		require.Len(t, filtered, len(all))

		empty := listBills(t, server, "1999-01-01")
		require.Empty(t, empty)

		resp := do(t, http.MethodGet, server.URL+"/api/bills?date=not-a-date", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("daily total", func(t *testing.T) {
		all := listBills(t, server, "")
		today := all[0].BillDate

		want := decimal.Zero
		for _, b := range all {
			want = want.Add(b.TotalAmount)
		}

		resp := do(t, http.MethodGet, server.URL+"/api/daily-total/"+today, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Total decimal.Decimal `json:"total"`
		}
		decode(t, resp, &body)
		require.True(t, body.Total.Equal(want), "got %s want %s", body.Total, want)

		resp = do(t, http.MethodGet, server.URL+"/api/daily-total/1999-01-01", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var zero struct {
			Total decimal.Decimal `json:"total"`
		}
		decode(t, resp, &zero)
		require.True(t, zero.Total.Equal(decimal.Zero))

		resp = do(t, http.MethodGet, server.URL+"/api/daily-total/garbage", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func listBills(t *testing.T, server *httptest.Server, date string) []models.Bill {
	t.Helper()
	url := server.URL + "/api/bills"
	if date != "" {
		url = fmt.Sprintf("%s?date=%s", url, date)
	}
	resp := do(t, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bills []models.Bill
	decode(t, resp, &bills)
	return bills
}

func TestHealthz(t *testing.T) {
	server := newTestServer(t)
	resp := do(t, http.MethodGet, server.URL+"/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tejavath/vaanibill/internal/billing"
	"github.com/tejavath/vaanibill/internal/metrics"
	"github.com/tejavath/vaanibill/internal/models"
	"github.com/tejavath/vaanibill/internal/storage"
)

// createBillRequest mirrors the client payload: the bill header plus every
// accumulated line.
type createBillRequest struct {
	Bill struct {
		BillNumber  string          `json:"billNumber"`
		TotalAmount decimal.Decimal `json:"totalAmount"`
		BillDate    string          `json:"billDate"`
	} `json:"bill"`
	Items []struct {
		ItemID   string          `json:"itemId"`
		ItemName string          `json:"itemName"`
		Quantity decimal.Decimal `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		Total    decimal.Decimal `json:"total"`
	} `json:"items"`
}

func (s *Server) createBill(w http.ResponseWriter, r *http.Request) {
	var req createBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.BillCreateFailures.WithLabelValues("validation").Inc()
		writeError(w, http.StatusBadRequest, "invalid bill data")
		return
	}
	if len(req.Items) == 0 {
		metrics.BillCreateFailures.WithLabelValues("validation").Inc()
		writeError(w, http.StatusBadRequest, "bill must have at least one line")
		return
	}

	// Rebuild the bill through an accumulator so every line total and the
	// grand total are recomputed server-side; a client-supplied figure that
	// disagrees is rejected rather than trusted.
	acc := billing.New()
	for i, in := range req.Items {
		line := acc.Append(in.ItemID, in.ItemName, in.Price, in.Quantity)
		if !in.Total.IsZero() && !in.Total.Equal(line.Total) {
			metrics.BillCreateFailures.WithLabelValues("validation").Inc()
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("line %d: total does not equal quantity × price", i+1))
			return
		}
	}
	if !req.Bill.TotalAmount.Equal(acc.Sum()) {
		metrics.BillCreateFailures.WithLabelValues("validation").Inc()
		writeError(w, http.StatusBadRequest, "bill total does not equal sum of line totals")
		return
	}

	billNumber := req.Bill.BillNumber
	if billNumber == "" {
		billNumber = billing.NewBillNumber(time.Now())
	}
	if req.Bill.BillDate != "" {
		if _, err := time.Parse("2006-01-02", req.Bill.BillDate); err != nil {
			metrics.BillCreateFailures.WithLabelValues("validation").Inc()
			writeError(w, http.StatusBadRequest, "billDate must be YYYY-MM-DD")
			return
		}
	}

	bill := &models.Bill{
		BillNumber:  billNumber,
		TotalAmount: acc.Sum(),
		BillDate:    req.Bill.BillDate,
	}
	lines := make([]models.BillLineInput, 0, acc.Len())
	for _, line := range acc.Lines() {
		lines = append(lines, models.BillLineInput{
			ItemID:   line.ItemID,
			ItemName: line.ItemName,
			Quantity: line.Quantity,
			Price:    line.Price,
			Total:    line.Total,
		})
	}

	if err := s.store.CreateBill(r.Context(), bill, lines); err != nil {
		if storage.IsValidation(err) {
			metrics.BillCreateFailures.WithLabelValues("validation").Inc()
		} else {
			metrics.BillCreateFailures.WithLabelValues("persistence").Inc()
		}
		writeStoreError(w, r, err)
		return
	}

	metrics.BillsCreated.Inc()
	writeJSON(w, http.StatusOK, bill)
}

func (s *Server) listBills(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
	}

	bills, err := s.store.ListBills(r.Context(), date)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

func (s *Server) getBillLines(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lines, err := s.store.GetBillLines(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}

func (s *Server) dailyTotal(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	total, err := s.store.DailyTotal(r.Context(), date)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{"total": total})
}

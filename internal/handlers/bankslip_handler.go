package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bankslips/internal/models"
	"bankslips/internal/services"
)

// Literal error bodies are part of the client contract and must match exactly.
const (
	notFoundMessage     = "Bankslip not found with the specified id"
	missingBodyMessage  = "Bankslip not provided in the request body"
	invalidSlipMessage  = "Invalid bankslip provided.The possible reasons are:\n* A field of the provided bankslip was null or with invalid values"
	invalidStateMessage = "Bankslip in a terminal status can not be changed"
)

const collectionPath = "/rest/bankslips"

type BankslipHandler struct {
	Service *services.BankslipService
}

type resourceLink struct {
	Href string `json:"href"`
}

type resourceLinks struct {
	Self       resourceLink `json:"self"`
	Collection resourceLink `json:"bankslips-uri"`
}

// bankslipResource is a slip plus its HATEOAS link envelope.
type bankslipResource struct {
	models.BankSlip
	Links resourceLinks `json:"_links"`
}

func toResource(r *http.Request, slip models.BankSlip) bankslipResource {
	collection := baseURL(r) + collectionPath
	return bankslipResource{
		BankSlip: slip,
		Links: resourceLinks{
			Self:       resourceLink{Href: collection + "/" + slip.ID},
			Collection: resourceLink{Href: collection},
		},
	}
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (h *BankslipHandler) GetBankslipByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	slip, err := h.Service.GetBankslipByID(r.Context(), id)
	if errors.Is(err, models.ErrBankslipNotFound) {
		writeText(w, http.StatusNotFound, notFoundMessage)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toResource(r, slip))
}

func (h *BankslipHandler) GetBankslips(w http.ResponseWriter, r *http.Request) {
	slips, err := h.Service.GetBankslips(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	resources := make([]bankslipResource, 0, len(slips))
	for _, slip := range slips {
		resources = append(resources, toResource(r, slip))
	}
	writeJSON(w, http.StatusOK, resources)
}

func (h *BankslipHandler) CreateBankslip(w http.ResponseWriter, r *http.Request) {
	var input models.BankslipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeText(w, http.StatusBadRequest, missingBodyMessage)
		return
	}
	slip, err := h.Service.CreateBankslip(r.Context(), input)
	if errors.Is(err, models.ErrInvalidBankslip) {
		writeText(w, http.StatusUnprocessableEntity, invalidSlipMessage)
		return
	}
	if err != nil {
		http.Error(w, "Failed to create", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toResource(r, slip))
}

func (h *BankslipHandler) PayBankslip(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var input models.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.PaymentDate == nil {
		writeText(w, http.StatusBadRequest, missingBodyMessage)
		return
	}
	err := h.Service.PayBankslip(r.Context(), id, *input.PaymentDate)
	switch {
	case errors.Is(err, models.ErrBankslipNotFound):
		writeText(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, models.ErrInvalidState):
		writeText(w, http.StatusConflict, invalidStateMessage)
	case err != nil:
		http.Error(w, "Failed to pay", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *BankslipHandler) CancelBankslip(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	err := h.Service.CancelBankslip(r.Context(), id)
	switch {
	case errors.Is(err, models.ErrBankslipNotFound):
		writeText(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, models.ErrInvalidState):
		writeText(w, http.StatusConflict, invalidStateMessage)
	case err != nil:
		http.Error(w, "Failed to cancel", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeText writes the body verbatim, without the trailing newline http.Error appends.
func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, message)
}

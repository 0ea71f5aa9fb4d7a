// internal/handlers/phone.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/ports"
)

// Success messages
const (
	MsgCreated      = "Added new phone successfully"
	MsgUpdated      = "update phone successfully"
	MsgStockUpdated = "Updated stock successfully"
)

// numeric body fields map to their validation messages on type mismatch
var phoneFieldMessages = map[string]string{
	"price":     domain.MsgPriceInvalid,
	"costPrice": domain.MsgCostPriceInvalid,
	"quantity":  domain.MsgQuantityInvalid,
}

// PhoneHandler handles phone-related HTTP requests
type PhoneHandler struct {
	service ports.PhoneService
	respond *Responder
	logger  *slog.Logger
}

// NewPhoneHandler creates a new phone handler
func NewPhoneHandler(service ports.PhoneService, respond *Responder, logger *slog.Logger) *PhoneHandler {
	return &PhoneHandler{
		service: service,
		respond: respond,
		logger:  logger.With(slog.String("handler", "phone")),
	}
}

// ListPhones handles GET /api/phones
func (h *PhoneHandler) ListPhones(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	result, err := h.service.List(r.Context(), params)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, listResponse{
		Success:    true,
		Data:       orEmpty(result.Data),
		Pagination: result.Pagination,
	})
}

// SearchPhones handles GET /api/phones/search?q=
func (h *PhoneHandler) SearchPhones(w http.ResponseWriter, r *http.Request) {
	phones, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, countedResponse[domain.Phone]{
		Success: true,
		Count:   len(phones),
		Data:    orEmpty(phones),
	})
}

// GetPhone handles GET /api/phones/{id}
func (h *PhoneHandler) GetPhone(w http.ResponseWriter, r *http.Request) {
	phone, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, dataResponse{Success: true, Data: phone})
}

// CreatePhone handles POST /api/phones
func (h *PhoneHandler) CreatePhone(w http.ResponseWriter, r *http.Request) {
	var req CreatePhoneRequest
	typeViolations, err := decodeJSON(r, &req, phoneFieldMessages)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if len(typeViolations) > 0 {
		violations := mergeViolations(typeViolations, domain.ValidateCreate(req.ToDomain()))
		h.respond.Error(w, r, domain.NewValidationError(violations...))
		return
	}

	phone, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusCreated, dataResponse{
		Success: true,
		Message: MsgCreated,
		Data:    phone,
	})
}

// UpdatePhone handles PUT /api/phones/{id}
func (h *PhoneHandler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := domain.ParseID(id); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	var req UpdatePhoneRequest
	typeViolations, err := decodeJSON(r, &req, phoneFieldMessages)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if len(typeViolations) > 0 {
		violations := mergeViolations(typeViolations, domain.ValidatePatch(req.ToDomain()))
		h.respond.Error(w, r, domain.NewValidationError(violations...))
		return
	}

	phone, err := h.service.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, dataResponse{
		Success: true,
		Message: MsgUpdated,
		Data:    phone,
	})
}

// AdjustStock handles PATCH /api/phones/{id}/stock
func (h *PhoneHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := domain.ParseID(id); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	var req StockRequest
	typeViolations, err := decodeJSON(r, &req, phoneFieldMessages)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if len(typeViolations) > 0 || req.Quantity == nil {
		violations := typeViolations
		if req.Quantity == nil {
			violations = mergeViolations(violations, []string{domain.MsgQuantityInvalid})
		}
		adj := domain.StockAdjustment{Operation: domain.StockOperation(req.Operation)}.Normalize()
		var verr *domain.Error
		if errors.As(adj.Validate(), &verr) {
			violations = mergeViolations(violations, verr.Details)
		}
		h.respond.Error(w, r, domain.NewValidationError(violations...))
		return
	}

	phone, err := h.service.AdjustStock(r.Context(), id, domain.StockAdjustment{
		Quantity:  *req.Quantity,
		Operation: domain.StockOperation(req.Operation),
	})
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, dataResponse{
		Success: true,
		Message: MsgStockUpdated,
		Data:    phone,
	})
}

// DeletePhone handles DELETE /api/phones/{id}
func (h *PhoneHandler) DeletePhone(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SoftDelete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, messageResponse{Success: true, Message: result.Message})
}

// DeletePhonePermanent handles DELETE /api/phones/{id}/permanent
func (h *PhoneHandler) DeletePhonePermanent(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.HardDelete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, messageResponse{Success: true, Message: result.Message})
}

// parseListParams parses query parameters for listing phones
func parseListParams(r *http.Request) (domain.ListParams, error) {
	q := r.URL.Query()
	params := domain.ListParams{
		Brand:     q.Get("brand"),
		Status:    q.Get("status"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	var violations []string
	collect := func(err error) {
		if err != nil {
			violations = append(violations, err.(*domain.Error).Details...)
		}
	}

	page, err := queryInt(r, "page")
	collect(err)
	limit, err := queryInt(r, "limit")
	collect(err)
	params.MinPrice, err = queryFloat(r, "minPrice")
	collect(err)
	params.MaxPrice, err = queryFloat(r, "maxPrice")
	collect(err)

	if len(violations) > 0 {
		return params, domain.NewValidationError(violations...)
	}

	if page != nil {
		params.Page = *page
	}
	if limit != nil {
		params.Limit = *limit
	}

	return params, nil
}

// Request/Response DTOs

// CreatePhoneRequest represents the request body for creating a phone
type CreatePhoneRequest struct {
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Price     *float64 `json:"price"`
	CostPrice *float64 `json:"costPrice"`
	Quantity  *int     `json:"quantity"`
	Color     string   `json:"color"`
	Storage   string   `json:"storage"`
	RAM       string   `json:"ram"`
	IMEIList  []string `json:"imeiList"`
}

// ToDomain converts the request to the service input
func (req CreatePhoneRequest) ToDomain() domain.CreatePhoneInput {
	return domain.CreatePhoneInput{
		Name:      req.Name,
		Brand:     req.Brand,
		Price:     req.Price,
		CostPrice: req.CostPrice,
		Quantity:  req.Quantity,
		Color:     req.Color,
		Storage:   req.Storage,
		RAM:       req.RAM,
		IMEIList:  req.IMEIList,
	}
}

// UpdatePhoneRequest represents the request body for updating a phone.
// Absent fields are left untouched.
type UpdatePhoneRequest struct {
	Name      *string   `json:"name"`
	Brand     *string   `json:"brand"`
	Price     *float64  `json:"price"`
	CostPrice *float64  `json:"costPrice"`
	Quantity  *int      `json:"quantity"`
	Color     *string   `json:"color"`
	Storage   *string   `json:"storage"`
	RAM       *string   `json:"ram"`
	IMEIList  *[]string `json:"imeiList"`
}

// ToDomain converts the request to a patch
func (req UpdatePhoneRequest) ToDomain() domain.UpdatePhonePatch {
	return domain.UpdatePhonePatch{
		Name:      req.Name,
		Brand:     req.Brand,
		Price:     req.Price,
		CostPrice: req.CostPrice,
		Quantity:  req.Quantity,
		Color:     req.Color,
		Storage:   req.Storage,
		RAM:       req.RAM,
		IMEIList:  req.IMEIList,
	}
}

// StockRequest represents the body of a stock adjustment
type StockRequest struct {
	Quantity  *int   `json:"quantity"`
	Operation string `json:"operation"`
}

type dataResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type listResponse struct {
	Success    bool              `json:"success"`
	Data       []domain.Phone    `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

type countedResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

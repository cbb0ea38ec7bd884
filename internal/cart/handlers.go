package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kasir-id/backend-kasir/internal/common"
	"github.com/kasir-id/backend-kasir/internal/pricing"
)

// Handler wires the cart service to HTTP.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type productPayload struct {
	Title string `json:"title" validate:"required"`
	Price int64  `json:"price" validate:"gte=0"`
}

type conditionPayload struct {
	Kind       string `json:"kind" validate:"required,oneof=percentage quantity_tier"`
	Percentage int64  `json:"percentage"`
	Minimum    int64  `json:"minimum"`
	Quantity   int64  `json:"quantity"`
}

// conditionList accepts either a single condition object or an array of
// them; a single condition is normalised into a one-element list at the
// boundary.
type conditionList []conditionPayload

func (l *conditionList) UnmarshalJSON(data []byte) error {
	var many []conditionPayload
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one conditionPayload
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = conditionList{one}
	return nil
}

type addItemRequest struct {
	Product    productPayload `json:"product" validate:"required"`
	Quantity   int64          `json:"quantity" validate:"required,gt=0"`
	Conditions conditionList  `json:"conditions" validate:"dive"`
}

type removeItemRequest struct {
	Title string `json:"title" validate:"required"`
	Price int64  `json:"price" validate:"gte=0"`
}

// Create opens a new cart and returns its identifier.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.Svc.Create(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.Data(w, http.StatusCreated, map[string]string{"cartId": id.String()})
}

// AddItem validates the payload and adds (or replaces) a line item.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}
	var payload addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json body", nil)
		return
	}
	if err := h.validate(payload); err != nil {
		h.writeError(w, err)
		return
	}
	conditions := make([]pricing.Condition, 0, len(payload.Conditions))
	for _, c := range payload.Conditions {
		switch pricing.Kind(c.Kind) {
		case pricing.KindPercentage:
			conditions = append(conditions, pricing.Percentage(c.Percentage, c.Minimum))
		case pricing.KindQuantityTier:
			conditions = append(conditions, pricing.QuantityTier(c.Quantity))
		default:
			conditions = append(conditions, pricing.Condition{Kind: pricing.Kind(c.Kind)})
		}
	}
	item := LineItem{
		Product:  Product{Title: payload.Product.Title, Price: payload.Product.Price},
		Quantity: payload.Quantity,
	}
	if len(conditions) > 0 {
		item.Conditions = conditions
	}
	if err := h.Svc.AddItem(r.Context(), id, item); err != nil {
		h.writeError(w, err)
		return
	}
	common.Data(w, http.StatusOK, itemView(item))
}

// RemoveItem drops the line matching the posted product.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}
	var payload removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json body", nil)
		return
	}
	if err := h.validate(payload); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.Svc.RemoveItem(r.Context(), id, Product{Title: payload.Title, Price: payload.Price}); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Total returns the cart's payable total.
func (h *Handler) Total(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}
	total, err := h.Svc.Total(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.Data(w, http.StatusOK, map[string]int64{"total": total.Amount()})
}

// Summary returns the read-only cart snapshot with the formatted total.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}
	summary, err := h.Svc.Summary(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.Data(w, http.StatusOK, map[string]any{
		"total":     summary.Total.Amount(),
		"formatted": summary.Formatted,
		"items":     itemViews(summary.Items),
	})
}

// Checkout snapshots and clears the cart in one step.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}
	snap, err := h.Svc.Checkout(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.Data(w, http.StatusOK, map[string]any{
		"total": snap.Total.Amount(),
		"items": itemViews(snap.Items),
	})
}

func (h *Handler) cartID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid cart id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONAppError(w, common.NewAppError("NOT_FOUND", "cart not found", http.StatusNotFound, err))
	case errors.As(err, &fieldErrs):
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Namespace()] = fe.Tag()
		}
		app := common.NewAppError("VALIDATION", "invalid payload", http.StatusBadRequest, err)
		app.Details = details
		common.JSONAppError(w, app)
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, pricing.ErrInvalidPercentage),
		errors.Is(err, pricing.ErrInvalidMinimum),
		errors.Is(err, pricing.ErrInvalidTierQuantity),
		errors.Is(err, pricing.ErrUnknownKind):
		common.JSONAppError(w, common.NewAppError("VALIDATION", err.Error(), http.StatusBadRequest, err))
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}

func itemView(item LineItem) map[string]any {
	view := map[string]any{
		"product": map[string]any{
			"title": item.Product.Title,
			"price": item.Product.Price,
		},
		"quantity": item.Quantity,
		"payable":  item.Payable().Amount(),
	}
	if len(item.Conditions) > 0 {
		view["conditions"] = item.Conditions
	}
	return view
}

func itemViews(items []LineItem) []map[string]any {
	views := make([]map[string]any, 0, len(items))
	for _, item := range items {
		views = append(views, itemView(item))
	}
	return views
}

package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marromlanches/storefront-backend/api/responses"
	"github.com/marromlanches/storefront-backend/api/validators"
	"github.com/marromlanches/storefront-backend/internal/checkout"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/logger"
)

type checkoutRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required,max=200"`
	CustomerPhone   string             `json:"customer_phone" validate:"required,max=40"`
	CustomerAddress string             `json:"customer_address" validate:"max=500"`
	DeliveryType    string             `json:"delivery_type" validate:"required"`
	DeliveryAreaID  *uuid.UUID         `json:"delivery_area_id"`
	PaymentMethod   string             `json:"payment_method" validate:"required"`
	Notes           string             `json:"notes" validate:"max=1000"`
	Lines           []quoteLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type counterOrderRequest struct {
	TableNumber  int                `json:"table_number" validate:"required,min=1"`
	Observations string             `json:"observations" validate:"max=1000"`
	Lines        []quoteLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// Checkout turns a storefront cart into a persisted order.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deliveryType, err := enums.ParseDeliveryType(body.DeliveryType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery_type"))
			return
		}

		result, err := svc.Checkout(r.Context(), checkout.CheckoutInput{
			CustomerName:    body.CustomerName,
			CustomerPhone:   body.CustomerPhone,
			CustomerAddress: body.CustomerAddress,
			DeliveryType:    deliveryType,
			DeliveryAreaID:  body.DeliveryAreaID,
			PaymentMethod:   body.PaymentMethod,
			Notes:           body.Notes,
			Lines:           toQuoteLines(body.Lines),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// CounterOrder registers a staff-entered table order from the back office.
func CounterOrder(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var body counterOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CounterCheckout(r.Context(), checkout.CounterCheckoutInput{
			TableNumber:  body.TableNumber,
			Observations: body.Observations,
			Lines:        toQuoteLines(body.Lines),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/marromlanches/storefront-backend/api/responses"
	"github.com/marromlanches/storefront-backend/api/validators"
	"github.com/marromlanches/storefront-backend/internal/cart"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/logger"
)

type quoteExtraRequest struct {
	ExtraID  uuid.UUID `json:"extra_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

type quoteLineRequest struct {
	LineID       *uuid.UUID          `json:"line_id"`
	ProductID    uuid.UUID           `json:"product_id" validate:"required"`
	Quantity     int                 `json:"quantity" validate:"required,min=1"`
	Observations string              `json:"observations" validate:"max=500"`
	Extras       []quoteExtraRequest `json:"extras" validate:"dive"`
}

type quoteRequest struct {
	Lines          []quoteLineRequest `json:"lines" validate:"required,min=1,dive"`
	DeliveryType   string             `json:"delivery_type" validate:"required"`
	DeliveryAreaID *uuid.UUID         `json:"delivery_area_id"`
}

func toQuoteLines(lines []quoteLineRequest) []cart.QuoteLineInput {
	out := make([]cart.QuoteLineInput, 0, len(lines))
	for _, line := range lines {
		input := cart.QuoteLineInput{
			LineID:       line.LineID,
			ProductID:    line.ProductID,
			Quantity:     line.Quantity,
			Observations: line.Observations,
		}
		for _, extra := range line.Extras {
			input.Extras = append(input.Extras, cart.QuoteExtraInput{
				ExtraID:  extra.ExtraID,
				Quantity: extra.Quantity,
			})
		}
		out = append(out, input)
	}
	return out
}

// CartQuote prices a cart snapshot server-side without persisting anything.
func CartQuote(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var body quoteRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deliveryType, err := enums.ParseDeliveryType(body.DeliveryType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery_type"))
			return
		}

		quote, err := svc.Quote(r.Context(), cart.QuoteInput{
			Lines:          toQuoteLines(body.Lines),
			DeliveryType:   deliveryType,
			DeliveryAreaID: body.DeliveryAreaID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/money"
)

type productLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type extraLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Extra, error)
}

type areaLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.DeliveryArea, error)
}

// Service prices cart snapshots against the current catalog.
type Service interface {
	Quote(ctx context.Context, input QuoteInput) (*Quote, error)
	PriceLines(ctx context.Context, inputs []QuoteLineInput) ([]Line, error)
	DeliveryFee(ctx context.Context, deliveryType enums.DeliveryType, areaID *uuid.UUID) (*models.DeliveryArea, error)
}

type service struct {
	products productLoader
	extras   extraLoader
	areas    areaLoader
}

// NewService builds a cart pricing service backed by the catalog loaders.
func NewService(products productLoader, extras extraLoader, areas areaLoader) (Service, error) {
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if extras == nil {
		return nil, fmt.Errorf("extra loader required")
	}
	if areas == nil {
		return nil, fmt.Errorf("delivery area loader required")
	}
	return &service{products: products, extras: extras, areas: areas}, nil
}

// Quote prices the submitted cart. All prices come from the catalog at call
// time; client-side prices are never trusted.
func (s *service) Quote(ctx context.Context, input QuoteInput) (*Quote, error) {
	if len(input.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart must contain at least one line")
	}
	if !input.DeliveryType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery type")
	}

	lines, err := s.PriceLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	area, err := s.DeliveryFee(ctx, input.DeliveryType, input.DeliveryAreaID)
	if err != nil {
		return nil, err
	}

	fee := money.Zero()
	if area != nil {
		fee = area.Fee
	}

	subtotal := money.Round2(Subtotal(lines))
	fee = money.Round2(fee)

	quote := &Quote{
		Lines:       make([]QuoteLine, 0, len(lines)),
		ItemCount:   ItemCount(lines),
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}
	for _, line := range lines {
		quoted := QuoteLine{
			LineID:       line.ID,
			ProductID:    line.ProductID,
			Name:         line.Name,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
			Observations: line.Observations,
			PerUnitPrice: money.Round2(PerUnitPrice(line)),
			Total:        money.Round2(LineTotal(line)),
		}
		for _, extra := range line.Extras {
			quoted.Extras = append(quoted.Extras, QuoteExtra{
				ExtraID:   extra.ExtraID,
				Name:      extra.Name,
				UnitPrice: extra.UnitPrice,
				Quantity:  extra.Quantity,
			})
		}
		quote.Lines = append(quote.Lines, quoted)
	}
	return quote, nil
}

// PriceLines validates every requested line against the catalog and returns
// priced cart lines carrying catalog snapshots.
func (s *service) PriceLines(ctx context.Context, inputs []QuoteLineInput) ([]Line, error) {
	lines := make([]Line, 0, len(inputs))
	for _, payload := range inputs {
		if payload.ProductID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
		}
		if payload.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be positive")
		}

		product, err := s.products.GetByID(ctx, payload.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		if !product.Available {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product %q is not available", product.Name))
		}
		if len(payload.Extras) > 0 && !product.HasAddons {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product %q does not accept add-ons", product.Name))
		}

		line := Line{
			ProductID:    product.ID,
			Name:         product.Name,
			UnitPrice:    product.Price,
			Quantity:     payload.Quantity,
			Observations: payload.Observations,
		}
		if payload.LineID != nil {
			line.ID = *payload.LineID
		} else {
			line.ID = uuid.New()
		}

		for _, extraPayload := range payload.Extras {
			if extraPayload.Quantity <= 0 {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "extra quantity must be positive")
			}
			extra, err := s.extras.GetByID(ctx, extraPayload.ExtraID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, pkgerrors.New(pkgerrors.CodeNotFound, "extra not found")
				}
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load extra")
			}
			if !extra.Active {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("extra %q is not available", extra.Name))
			}
			line.Extras = append(line.Extras, LineExtra{
				ExtraID:   extra.ID,
				Name:      extra.Name,
				UnitPrice: extra.Price,
				Quantity:  extraPayload.Quantity,
			})
		}

		lines = append(lines, line)
	}
	return lines, nil
}

// DeliveryFee resolves the delivery area for the given mode. Pickup orders
// never carry a fee; delivery orders require an active area.
func (s *service) DeliveryFee(ctx context.Context, deliveryType enums.DeliveryType, areaID *uuid.UUID) (*models.DeliveryArea, error) {
	if deliveryType != enums.DeliveryTypeDelivery {
		return nil, nil
	}
	if areaID == nil || *areaID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery area is required for delivery orders")
	}

	area, err := s.areas.GetByID(ctx, *areaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "delivery area not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load delivery area")
	}
	if !area.Active {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery area is not active")
	}
	return area, nil
}

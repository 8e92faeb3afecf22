package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/api/responses"
	"github.com/marromlanches/storefront-backend/api/validators"
	"github.com/marromlanches/storefront-backend/internal/settings"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/logger"
)

type settingsUpdateRequest struct {
	CompanyName         *string          `json:"company_name" validate:"omitempty,max=200"`
	Subtitle            *string          `json:"subtitle"`
	WelcomeTitle        *string          `json:"welcome_title"`
	Address             *string          `json:"address"`
	Phone               *string          `json:"phone"`
	WhatsApp            *string          `json:"whatsapp"`
	BusinessHours       *string          `json:"business_hours"`
	DeliveryTime        *string          `json:"delivery_time"`
	FreeDeliveryMinimum *decimal.Decimal `json:"free_delivery_minimum"`
	LogoURL             *string          `json:"logo_url"`
	IsOpen              *bool            `json:"is_open"`
}

type storeOpenRequest struct {
	IsOpen *bool `json:"is_open" validate:"required"`
}

func AdminGetSettings(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		row, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSettingsResponse(row))
	}
}

func AdminUpdateSettings(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var body settingsUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), settings.UpdateInput{
			CompanyName:         body.CompanyName,
			Subtitle:            body.Subtitle,
			WelcomeTitle:        body.WelcomeTitle,
			Address:             body.Address,
			Phone:               body.Phone,
			WhatsApp:            body.WhatsApp,
			BusinessHours:       body.BusinessHours,
			DeliveryTime:        body.DeliveryTime,
			FreeDeliveryMinimum: body.FreeDeliveryMinimum,
			LogoURL:             body.LogoURL,
			IsOpen:              body.IsOpen,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSettingsResponse(updated))
	}
}

// AdminSetStoreOpen flips the accepting-orders switch without touching the
// rest of the profile.
func AdminSetStoreOpen(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var body storeOpenRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.SetOpen(r.Context(), *body.IsOpen)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSettingsResponse(updated))
	}
}

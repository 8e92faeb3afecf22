package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/api/responses"
	"github.com/marromlanches/storefront-backend/api/validators"
	"github.com/marromlanches/storefront-backend/internal/extras"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/logger"
)

type extraCreateRequest struct {
	Name   string          `json:"name" validate:"required,max=100"`
	Price  decimal.Decimal `json:"price"`
	Active *bool           `json:"active"`
}

type extraUpdateRequest struct {
	Name   *string          `json:"name" validate:"omitempty,max=100"`
	Price  *decimal.Decimal `json:"price"`
	Active *bool            `json:"active"`
}

func AdminListExtras(svc extras.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "extras service unavailable"))
			return
		}

		activeOnly, _, err := queryBool(r, "active_only")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.List(r.Context(), activeOnly)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newExtraList(rows))
	}
}

func AdminCreateExtra(svc extras.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "extras service unavailable"))
			return
		}

		var body extraCreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), extras.CreateInput{
			Name:   body.Name,
			Price:  body.Price,
			Active: body.Active,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newExtraResponse(created))
	}
}

func AdminGetExtra(svc extras.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "extras service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newExtraResponse(row))
	}
}

func AdminUpdateExtra(svc extras.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "extras service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body extraUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, extras.UpdateInput{
			Name:   body.Name,
			Price:  body.Price,
			Active: body.Active,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newExtraResponse(updated))
	}
}

func AdminDeleteExtra(svc extras.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "extras service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

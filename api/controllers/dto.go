package controllers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/enums"
)

type categoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Icon        *string   `json:"icon,omitempty"`
	Description *string   `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newCategoryResponse(row *models.Category) categoryResponse {
	return categoryResponse{
		ID:          row.ID,
		Name:        row.Name,
		Icon:        row.Icon,
		Description: row.Description,
		SortOrder:   row.SortOrder,
		Active:      row.Active,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func newCategoryList(rows []models.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newCategoryResponse(&rows[i]))
	}
	return out
}

type productResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Description     *string           `json:"description,omitempty"`
	Price           decimal.Decimal   `json:"price"`
	Image           *string           `json:"image,omitempty"`
	CategoryID      *uuid.UUID        `json:"category_id,omitempty"`
	Category        *categoryResponse `json:"category,omitempty"`
	Ingredients     []string          `json:"ingredients,omitempty"`
	PreparationTime *int              `json:"preparation_time,omitempty"`
	Rating          *float64          `json:"rating,omitempty"`
	Available       bool              `json:"available"`
	HasAddons       bool              `json:"has_addons"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func newProductResponse(row *models.Product) productResponse {
	resp := productResponse{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		Price:           row.Price,
		Image:           row.Image,
		CategoryID:      row.CategoryID,
		Ingredients:     row.Ingredients,
		PreparationTime: row.PreparationTime,
		Rating:          row.Rating,
		Available:       row.Available,
		HasAddons:       row.HasAddons,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.Category != nil {
		category := newCategoryResponse(row.Category)
		resp.Category = &category
	}
	return resp
}

func newProductList(rows []models.Product) []productResponse {
	out := make([]productResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newProductResponse(&rows[i]))
	}
	return out
}

type extraResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newExtraResponse(row *models.Extra) extraResponse {
	return extraResponse{
		ID:        row.ID,
		Name:      row.Name,
		Price:     row.Price,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func newExtraList(rows []models.Extra) []extraResponse {
	out := make([]extraResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newExtraResponse(&rows[i]))
	}
	return out
}

type deliveryAreaResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Fee       decimal.Decimal `json:"fee"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newDeliveryAreaResponse(row *models.DeliveryArea) deliveryAreaResponse {
	return deliveryAreaResponse{
		ID:        row.ID,
		Name:      row.Name,
		Fee:       row.Fee,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func newDeliveryAreaList(rows []models.DeliveryArea) []deliveryAreaResponse {
	out := make([]deliveryAreaResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newDeliveryAreaResponse(&rows[i]))
	}
	return out
}

type paymentMethodResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPaymentMethodResponse(row *models.PaymentMethodOption) paymentMethodResponse {
	return paymentMethodResponse{
		ID:        row.ID,
		Name:      row.Name,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func newPaymentMethodList(rows []models.PaymentMethodOption) []paymentMethodResponse {
	out := make([]paymentMethodResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newPaymentMethodResponse(&rows[i]))
	}
	return out
}

type settingsResponse struct {
	ID                  uuid.UUID        `json:"id"`
	CompanyName         string           `json:"company_name"`
	Subtitle            *string          `json:"subtitle,omitempty"`
	WelcomeTitle        *string          `json:"welcome_title,omitempty"`
	Address             *string          `json:"address,omitempty"`
	Phone               *string          `json:"phone,omitempty"`
	WhatsApp            *string          `json:"whatsapp,omitempty"`
	BusinessHours       *string          `json:"business_hours,omitempty"`
	DeliveryTime        *string          `json:"delivery_time,omitempty"`
	FreeDeliveryMinimum *decimal.Decimal `json:"free_delivery_minimum,omitempty"`
	LogoURL             *string          `json:"logo_url,omitempty"`
	IsOpen              bool             `json:"is_open"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func newSettingsResponse(row *models.CompanySettings) settingsResponse {
	return settingsResponse{
		ID:                  row.ID,
		CompanyName:         row.CompanyName,
		Subtitle:            row.Subtitle,
		WelcomeTitle:        row.WelcomeTitle,
		Address:             row.Address,
		Phone:               row.Phone,
		WhatsApp:            row.WhatsApp,
		BusinessHours:       row.BusinessHours,
		DeliveryTime:        row.DeliveryTime,
		FreeDeliveryMinimum: row.FreeDeliveryMinimum,
		LogoURL:             row.LogoURL,
		IsOpen:              row.IsOpen,
		UpdatedAt:           row.UpdatedAt,
	}
}

type notificationResponse struct {
	ID        uuid.UUID              `json:"id"`
	Type      enums.NotificationType `json:"type"`
	OrderID   uuid.UUID              `json:"order_id"`
	Title     string                 `json:"title"`
	Body      *string                `json:"body,omitempty"`
	ReadAt    *time.Time             `json:"read_at,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func newNotificationList(rows []models.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(rows))
	for i := range rows {
		row := rows[i]
		out = append(out, notificationResponse{
			ID:        row.ID,
			Type:      row.Type,
			OrderID:   row.OrderID,
			Title:     row.Title,
			Body:      row.Body,
			ReadAt:    row.ReadAt,
			CreatedAt: row.CreatedAt,
		})
	}
	return out
}

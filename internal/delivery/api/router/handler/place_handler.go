package handler

import (
	"net/http"
	"time"

	"places/internal/delivery/api/response"
	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	"places/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityFunc resolves the authenticated caller of a request.
type IdentityFunc func(c echo.Context) (uuid.UUID, bool)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC  usecase.PlaceUsecase
	Identity IdentityFunc
}

// PlaceHandler exposes place CRUD over HTTP.
type PlaceHandler struct {
	placeUC  usecase.PlaceUsecase
	identity IdentityFunc
	binder   *echo.DefaultBinder
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		placeUC:  params.PlaceUC,
		identity: params.Identity,
		binder:   &echo.DefaultBinder{},
	}
}

// PlaceScopeQuery carries the optional userId and groupId query parameters.
type PlaceScopeQuery struct {
	UserID  string `query:"userId" validate:"omitempty,uuid"`
	GroupID string `query:"groupId" validate:"omitempty,uuid"`
}

// PlacePathParams carries the placeId path parameter.
type PlacePathParams struct {
	PlaceID string `param:"placeId" validate:"required,uuid"`
}

// OwnerRequest identifies the owner of a new place.
type OwnerRequest struct {
	ID   string `json:"id" validate:"required,uuid"`
	Type string `json:"type" validate:"required,oneof=USER GROUP"`
}

// AddressRequest is the address of a new place.
type AddressRequest struct {
	Label      string `json:"label" validate:"max=100"`
	Street     string `json:"street"`
	City       string `json:"city" validate:"max=100"`
	State      string `json:"state" validate:"max=100"`
	PostalCode string `json:"postalCode" validate:"max=32"`
	Country    string `json:"country" validate:"max=100"`
}

// CreatePlaceRequest represents the request body for creating a place
type CreatePlaceRequest struct {
	Owner    *OwnerRequest   `json:"owner" validate:"required"`
	Nickname string          `json:"nickname" validate:"required,notblank,max=100"`
	Address  *AddressRequest `json:"address"`
	Notes    string          `json:"notes"`
	Primary  bool            `json:"primary"`
}

// UpdateAddressRequest is a partial address update.
type UpdateAddressRequest struct {
	Label      *string `json:"label,omitempty" validate:"omitempty,max=100"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State      *string `json:"state,omitempty" validate:"omitempty,max=100"`
	PostalCode *string `json:"postalCode,omitempty" validate:"omitempty,max=32"`
	Country    *string `json:"country,omitempty" validate:"omitempty,max=100"`
}

// UpdatePlaceRequest represents the request body for updating a place.
// Omitted fields keep their stored values.
type UpdatePlaceRequest struct {
	Nickname *string               `json:"nickname,omitempty" validate:"omitempty,notblank,max=100"`
	Address  *UpdateAddressRequest `json:"address,omitempty"`
	Notes    *string               `json:"notes,omitempty"`
	Primary  *bool                 `json:"primary,omitempty"`
}

// AddressResponse is the address of a place.
type AddressResponse struct {
	Label      string `json:"label"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PlaceResponse is the JSON form of a place.
type PlaceResponse struct {
	PlaceID   uuid.UUID       `json:"placeId"`
	Nickname  string          `json:"nickname"`
	Address   AddressResponse `json:"address"`
	Notes     string          `json:"notes"`
	Primary   bool            `json:"primary"`
	OwnerID   uuid.UUID       `json:"ownerId"`
	OwnerType string          `json:"ownerType"`
	CreatedBy uuid.UUID       `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// PlacesResponse is the body of a listing. Both lists are always present.
type PlacesResponse struct {
	UserPlaces  []PlaceResponse `json:"userPlaces"`
	GroupPlaces []PlaceResponse `json:"groupPlaces"`
}

// ListPlaces handles GET /places
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	var query PlaceScopeQuery
	if err := h.bindAndValidateQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	callerID, ok := h.identity(c)
	if !ok {
		return response.Unauthenticated(c, "Caller identity is missing")
	}

	result, err := h.placeUC.ListPlaces(c.Request().Context(), parseOptionalID(query.UserID), parseOptionalID(query.GroupID), callerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PlacesResponse{
		UserPlaces:  toPlaceResponses(result.UserPlaces),
		GroupPlaces: toPlaceResponses(result.GroupPlaces),
	})
}

// CreatePlace handles POST /places
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	var req CreatePlaceRequest
	if err := h.binder.BindBody(c, &req); err != nil {
		return response.BadRequest(c, "Request body is not valid JSON")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	callerID, ok := h.identity(c)
	if !ok {
		return response.Unauthenticated(c, "Caller identity is missing")
	}

	input := &usecase.CreatePlaceInput{
		Owner: entity.OwnerRef{
			ID:   uuid.MustParse(req.Owner.ID),
			Type: entity.OwnerType(req.Owner.Type),
		},
		Nickname:  req.Nickname,
		Notes:     req.Notes,
		IsPrimary: req.Primary,
	}
	if req.Address != nil {
		input.Address = entity.Address{
			Label:      req.Address.Label,
			Street:     req.Address.Street,
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
			Country:    req.Address.Country,
		}
	}

	place, err := h.placeUC.CreatePlace(c.Request().Context(), callerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPlaceResponse(place))
}

// UpdatePlace handles PUT /places/:placeId
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	placeID, query, err := h.bindPlaceTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePlaceRequest
	if err := h.binder.BindBody(c, &req); err != nil {
		return response.BadRequest(c, "Request body is not valid JSON")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	callerID, ok := h.identity(c)
	if !ok {
		return response.Unauthenticated(c, "Caller identity is missing")
	}

	input := &usecase.UpdatePlaceInput{
		Nickname:  req.Nickname,
		Notes:     req.Notes,
		IsPrimary: req.Primary,
	}
	if req.Address != nil {
		input.Address = &usecase.AddressInput{
			Label:      req.Address.Label,
			Street:     req.Address.Street,
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
			Country:    req.Address.Country,
		}
	}

	place, err := h.placeUC.UpdatePlace(c.Request().Context(), placeID, callerID, parseOptionalID(query.GroupID), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place))
}

// DeletePlace handles DELETE /places/:placeId. Deleting an archived place succeeds.
func (h *PlaceHandler) DeletePlace(c echo.Context) error {
	placeID, query, err := h.bindPlaceTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	callerID, ok := h.identity(c)
	if !ok {
		return response.Unauthenticated(c, "Caller identity is missing")
	}

	if err := h.placeUC.DeletePlace(c.Request().Context(), placeID, callerID, parseOptionalID(query.GroupID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Empty(c, http.StatusOK)
}

// bindPlaceTarget validates the placeId path parameter and the scope query.
// userId is checked for format only; authorization follows the place owner.
// It never writes the response.
func (h *PlaceHandler) bindPlaceTarget(c echo.Context) (uuid.UUID, *PlaceScopeQuery, error) {
	var params PlacePathParams
	if err := h.binder.BindPathParams(c, &params); err != nil {
		return uuid.Nil, nil, domainerrors.ErrValidationFailed.WithDetails("invalid path parameters")
	}
	if err := c.Validate(&params); err != nil {
		return uuid.Nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var query PlaceScopeQuery
	if err := h.bindAndValidateQuery(c, &query); err != nil {
		return uuid.Nil, nil, err
	}

	return uuid.MustParse(params.PlaceID), &query, nil
}

// bindAndValidateQuery binds query parameters for any method; echo's Bind skips them on PUT.
func (h *PlaceHandler) bindAndValidateQuery(c echo.Context, query *PlaceScopeQuery) error {
	if err := h.binder.BindQueryParams(c, query); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid query parameters")
	}
	if err := c.Validate(query); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// parseOptionalID parses an already validated id; empty means absent.
func parseOptionalID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}

	id := uuid.MustParse(raw)

	return &id
}

func toPlaceResponses(places []*entity.Place) []PlaceResponse {
	responses := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		responses = append(responses, toPlaceResponse(place))
	}

	return responses
}

func toPlaceResponse(place *entity.Place) PlaceResponse {
	return PlaceResponse{
		PlaceID:  place.ID,
		Nickname: place.Nickname,
		Address: AddressResponse{
			Label:      place.Address.Label,
			Street:     place.Address.Street,
			City:       place.Address.City,
			State:      place.Address.State,
			PostalCode: place.Address.PostalCode,
			Country:    place.Address.Country,
		},
		Notes:     place.Notes,
		Primary:   place.IsPrimary,
		OwnerID:   place.OwnerID,
		OwnerType: place.OwnerType.String(),
		CreatedBy: place.CreatedBy,
		CreatedAt: place.CreatedAt,
		UpdatedAt: place.UpdatedAt,
	}
}

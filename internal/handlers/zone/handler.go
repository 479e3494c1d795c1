package zone

import (
	"net/http"
	"net/url"

	"timevault/infras/otel"
	locationDto "timevault/internal/domains/location/model/dto"
	locationService "timevault/internal/domains/location/service"
	zoneService "timevault/internal/domains/zone/service"
	"timevault/shared/constant"
	"timevault/shared/failure"
	"timevault/shared/logger"
	"timevault/shared/validator"
	"timevault/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const queryLocation = "location"

type Handler struct {
	location locationService.Location
	zone     zoneService.Zone
	otel     otel.Otel
}

func New(location locationService.Location, zone zoneService.Zone, otel otel.Otel) Handler {
	return Handler{
		location: location,
		zone:     zone,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/timezone", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTimeZoneQuery)
		routerGroup.Post("/", handler.GetTimeZone)
		// Identifiers such as "America/New_York" contain slashes, so the rest of the path is the identifier.
		routerGroup.Get("/identifiers/*", handler.DescribeIdentifier)
	})
}

// GetTimeZoneQuery finds the time zone of a location read from the query string.
// @Summary Find the time zone of a location
// @Description The zone is listed under its IANA, Windows and Rails names.
// @Tags TimeZone
// @Produce json
// @Param location.city query string false "City"
// @Param location.country query string false "Country name or ISO code"
// @Param location.postal_code query string false "Postal code"
// @Param location.state_or_province query string false "State or province"
// @Param location.latitude query number false "Latitude"
// @Param location.longitude query number false "Longitude"
// @Success 200 {object} response.Data[locationDto.TimeZoneResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/timezone [get]
func (handler *Handler) GetTimeZoneQuery(writer http.ResponseWriter, request *http.Request) {
	var req locationDto.TimeZoneRequest
	req.Location.FromQuery(request.URL.Query(), queryLocation)

	handler.getTimeZone(writer, request, req)
}

// GetTimeZone finds the time zone of a location.
// @Summary Find the time zone of a location
// @Tags TimeZone
// @Accept json
// @Produce json
// @Param request body locationDto.TimeZoneRequest true "Location"
// @Success 200 {object} response.Data[locationDto.TimeZoneResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/timezone [post]
func (handler *Handler) GetTimeZone(writer http.ResponseWriter, request *http.Request) {
	var req locationDto.TimeZoneRequest
	if err := validator.Decode(request.Body, &req); err != nil {
		logger.FromContext(request.Context()).Error().Err(err).Msg("failed to decode request")
		response.WithError(writer, err)

		return
	}

	handler.getTimeZone(writer, request, req)
}

func (handler *Handler) getTimeZone(writer http.ResponseWriter, request *http.Request, req locationDto.TimeZoneRequest) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeZone")
	defer scope.End()

	log := logger.FromContext(ctx)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")
		response.WithError(writer, err)

		return
	}

	if req.Location.IsEmpty() {
		err := failure.BadRequestFromString("location must have at least one field set")
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")
		response.WithError(writer, err)

		return
	}

	res, err := handler.location.Lookup(ctx, req.Location.ToModel())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to look up time zone")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DescribeIdentifier classifies a time zone identifier and lists its equivalents.
// @Summary Describe a time zone identifier
// @Description Accepts IANA, Windows or Rails identifiers, URL-encoded.
// @Tags TimeZone
// @Produce json
// @Param identifier path string true "Time zone identifier"
// @Success 200 {object} response.Data[zoneDto.ZoneResponse]
// @Failure 400 {object} response.Error
// @Router /v1/timezone/identifiers/{identifier} [get]
func (handler *Handler) DescribeIdentifier(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DescribeIdentifier")
	defer scope.End()

	identifier, err := url.PathUnescape(chi.URLParam(request, "*"))
	if err != nil {
		err = failure.BadRequestFromString("identifier is not a valid path segment")
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.zone.Describe(ctx, identifier)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Str("identifier", identifier).Msg("failed to describe time zone identifier")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

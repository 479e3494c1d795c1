package conversion

import (
	"fmt"
	"net/http"
	"time"

	"timevault/infras/otel"
	"timevault/internal/domains/conversion/model"
	"timevault/internal/domains/conversion/model/dto"
	"timevault/internal/domains/conversion/service"
	locationModel "timevault/internal/domains/location/model"
	"timevault/shared/constant"
	"timevault/shared/failure"
	"timevault/shared/logger"
	"timevault/shared/timezone"
	"timevault/shared/validator"
	"timevault/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Conversion
	otel    otel.Otel
}

func New(service service.Conversion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/time/conversion", func(routerGroup chi.Router) {
		routerGroup.Get("/timezone", handler.ConvertByTimeZoneQuery)
		routerGroup.Post("/timezone", handler.ConvertByTimeZone)
		routerGroup.Get("/location", handler.ConvertByLocationQuery)
		routerGroup.Post("/location", handler.ConvertByLocation)
	})
}

// ConvertByTimeZoneQuery converts a time between two zone identifiers read from the query string.
// @Summary Convert time between time zones
// @Description Time zones may be IANA, Windows or Rails identifiers. Formats are Go reference layouts.
// @Tags Conversion
// @Produce json
// @Param origin_time query string true "Origin time"
// @Param origin_time_zone query string true "Origin time zone"
// @Param target_time_zone query string true "Target time zone"
// @Param origin_time_format query string false "Layout of origin_time"
// @Param origin_response_time_format query string false "Layout of the echoed origin time"
// @Param converted_time_format query string false "Layout of the converted time"
// @Success 200 {object} response.Data[dto.TimeConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/time/conversion/timezone [get]
func (handler *Handler) ConvertByTimeZoneQuery(writer http.ResponseWriter, request *http.Request) {
	var req dto.TimeConversionRequest
	req.FromQuery(request.URL.Query())

	handler.convertByTimeZone(writer, request, req)
}

// ConvertByTimeZone converts a time between two zone identifiers.
// @Summary Convert time between time zones
// @Description Time zones may be IANA, Windows or Rails identifiers. Formats are Go reference layouts.
// @Tags Conversion
// @Accept json
// @Produce json
// @Param request body dto.TimeConversionRequest true "Conversion request"
// @Success 200 {object} response.Data[dto.TimeConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/time/conversion/timezone [post]
func (handler *Handler) ConvertByTimeZone(writer http.ResponseWriter, request *http.Request) {
	var req dto.TimeConversionRequest
	if err := validator.Decode(request.Body, &req); err != nil {
		logger.FromContext(request.Context()).Error().Err(err).Msg("failed to decode request")
		response.WithError(writer, err)

		return
	}

	handler.convertByTimeZone(writer, request, req)
}

func (handler *Handler) convertByTimeZone(writer http.ResponseWriter, request *http.Request, req dto.TimeConversionRequest) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertByTimeZone")
	defer scope.End()

	log := logger.FromContext(ctx)

	req.SetDefaults()

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")
		response.WithError(writer, err)

		return
	}

	originTime, err := req.ParseOriginTime(req.OriginTime)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse origin time")
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ConvertByIdentifier(ctx, originTime, req.OriginTimeZone, req.TargetTimeZone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert time")
		response.WithError(writer, err)

		return
	}

	var resp dto.TimeConversionResponse
	resp.FromResult(res, req.TimeLayouts)

	response.WithJSON(writer, http.StatusOK, resp)
}

// ConvertByLocationQuery converts a time between two locations read from the query string.
// @Summary Convert time between locations
// @Description Locations are given as nested keys, e.g. origin_location.city=Berlin&origin_location.country=DE.
// @Tags Conversion
// @Produce json
// @Param origin_time query string true "Origin time"
// @Param origin_location.city query string false "Origin city"
// @Param origin_location.country query string false "Origin country"
// @Param origin_location.postal_code query string false "Origin postal code"
// @Param origin_location.state_or_province query string false "Origin state or province"
// @Param origin_location.latitude query number false "Origin latitude"
// @Param origin_location.longitude query number false "Origin longitude"
// @Param target_location.city query string false "Target city"
// @Param target_location.country query string false "Target country"
// @Param target_location.postal_code query string false "Target postal code"
// @Param target_location.state_or_province query string false "Target state or province"
// @Param target_location.latitude query number false "Target latitude"
// @Param target_location.longitude query number false "Target longitude"
// @Param origin_time_format query string false "Layout of origin_time"
// @Param origin_response_time_format query string false "Layout of the echoed origin time"
// @Param converted_time_format query string false "Layout of the converted time"
// @Success 200 {object} response.Data[dto.LocatedTimeConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/time/conversion/location [get]
func (handler *Handler) ConvertByLocationQuery(writer http.ResponseWriter, request *http.Request) {
	var req dto.LocatedTimeConversionRequest
	req.FromQuery(request.URL.Query())

	handler.convertByLocation(writer, request, req)
}

// ConvertByLocation converts a time between two locations.
// @Summary Convert time between locations
// @Tags Conversion
// @Accept json
// @Produce json
// @Param request body dto.LocatedTimeConversionRequest true "Located conversion request"
// @Success 200 {object} response.Data[dto.LocatedTimeConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/time/conversion/location [post]
func (handler *Handler) ConvertByLocation(writer http.ResponseWriter, request *http.Request) {
	var req dto.LocatedTimeConversionRequest
	if err := validator.Decode(request.Body, &req); err != nil {
		logger.FromContext(request.Context()).Error().Err(err).Msg("failed to decode request")
		response.WithError(writer, err)

		return
	}

	handler.convertByLocation(writer, request, req)
}

func (handler *Handler) convertByLocation(writer http.ResponseWriter, request *http.Request, req dto.LocatedTimeConversionRequest) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertByLocation")
	defer scope.End()

	log := logger.FromContext(ctx)

	req.SetDefaults()

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")
		response.WithError(writer, err)

		return
	}

	if err := req.Validate(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate locations")
		response.WithError(writer, err)

		return
	}

	originTime, err := req.ParseOriginTime(req.OriginTime)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse origin time")
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ConvertByLocation(ctx, model.LocatedConversionInput{
		OriginTime:     originTime,
		OriginLocation: req.OriginLocation.ToModel(),
		TargetLocation: req.TargetLocation.ToModel(),
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert time between locations")
		response.WithError(writer, err)

		return
	}

	outcome := res.Outcome()
	scope.SetAttribute("conversion.outcome", outcome.String())

	if err := outcomeError(res, outcome); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("outcome", outcome.String()).Msg("located conversion did not complete")
		response.WithError(writer, err)

		return
	}

	var resp dto.LocatedTimeConversionResponse
	resp.FromResult(res, req.TimeLayouts)

	response.WithJSON(writer, http.StatusOK, resp)
}

func outcomeError(res model.LocatedConversionResult, outcome model.Outcome) error {
	switch outcome {
	case model.OutcomeResolutionUnavailable:
		return failure.Wrap(http.StatusServiceUnavailable, locationModel.ErrResolutionUnavailable)
	case model.OutcomeBothZonesNotFound:
		return failure.Wrap(http.StatusNotFound, fmt.Errorf("%w: origin %q and target %q",
			locationModel.ErrLocationNotFound, res.OriginLocation, res.TargetLocation))
	case model.OutcomeOriginZoneNotFound:
		return failure.Wrap(http.StatusNotFound, fmt.Errorf("%w: origin %q", locationModel.ErrLocationNotFound, res.OriginLocation))
	case model.OutcomeTargetZoneNotFound:
		return failure.Wrap(http.StatusNotFound, fmt.Errorf("%w: target %q", locationModel.ErrLocationNotFound, res.TargetLocation))
	case model.OutcomeConversionImpossible:
		return failure.Wrap(http.StatusUnprocessableEntity, fmt.Errorf("%w: %s in %s",
			model.ErrConversionImpossible, timezone.WallClock(res.OriginTime).Format(time.DateTime), res.OriginZone.ID))
	default:
		return nil
	}
}

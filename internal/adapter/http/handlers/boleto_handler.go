package handlers

import (
	"errors"
	"net/http"

	request "edu_boletos/internal/adapter/http/dto/request"
	response "edu_boletos/internal/adapter/http/dto/response"
	"edu_boletos/internal/usecase"
	"edu_boletos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBoletoPayload = pkg.NewDomainErrorSimple("INVALID_BOLETO_INPUT", "Invalid boleto payload", http.StatusBadRequest)
)

// BoletoHandler handles HTTP requests for boleto issuance and lifecycle.

type BoletoHandler struct {
	usecase usecase.IBoletoUseCase
}

func NewBoletoHandler(uc usecase.IBoletoUseCase) *BoletoHandler {
	return &BoletoHandler{usecase: uc}
}

func (h *BoletoHandler) CreateBoleto(c *gin.Context) {
	var payload request.CreateBoletoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoletoPayload.HTTPStatus, errInvalidBoletoPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DUE_DATE", "Invalid due_date, expected YYYY-MM-DD", http.StatusBadRequest).ToHTTPError())
		return
	}

	boleto, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBoleto(boleto))
}

func (h *BoletoHandler) CreateBoletoBatch(c *gin.Context) {
	var payload request.CreateBoletoBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoletoPayload.HTTPStatus, errInvalidBoletoPayload.ToHTTPError())
		return
	}

	inputs, err := payload.ToInputs()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DUE_DATE", "Invalid due_date, expected YYYY-MM-DD", http.StatusBadRequest).ToHTTPError())
		return
	}

	boletos, err := h.usecase.CreateBatch(c.Request.Context(), inputs)
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBoletos(boletos))
}

func (h *BoletoHandler) GetBoletoByID(c *gin.Context) {
	boleto, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoleto(boleto))
}

func (h *BoletoHandler) GetBoletoByNumber(c *gin.Context) {
	boleto, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoleto(boleto))
}

func (h *BoletoHandler) ListBoletosByStudent(c *gin.Context) {
	boletos, err := h.usecase.ListByStudentRef(c.Request.Context(), c.Param("student_ref"))
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoletos(boletos))
}

func (h *BoletoHandler) SettleBoleto(c *gin.Context) {
	var payload request.SettleBoletoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoletoPayload.HTTPStatus, errInvalidBoletoPayload.ToHTTPError())
		return
	}

	boleto, err := h.usecase.Settle(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoleto(boleto))
}

func (h *BoletoHandler) CancelBoleto(c *gin.Context) {
	// Reason is optional, so an empty body is accepted.
	var payload request.CancelBoletoRequest
	_ = c.ShouldBindJSON(&payload)

	boleto, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoleto(boleto))
}

func (h *BoletoHandler) QuotePix(c *gin.Context) {
	quote, err := h.usecase.QuotePix(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPixQuote(quote))
}

func (h *BoletoHandler) CreatePaymentLink(c *gin.Context) {
	link, err := h.usecase.CreatePaymentLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentLink(link))
}

// HandlePaymentEvent applies a normalized settlement event from the
// payments integration. Unknown statuses are accepted and leave the
// boleto untouched, so the integration can retry without side effects.
func (h *BoletoHandler) HandlePaymentEvent(c *gin.Context) {
	var payload request.PaymentEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoletoPayload.HTTPStatus, errInvalidBoletoPayload.ToHTTPError())
		return
	}

	boleto, err := h.usecase.SettleFromExternalEvent(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoleto(boleto))
}

func (h *BoletoHandler) SweepOverdue(c *gin.Context) {
	promoted, err := h.usecase.SweepOverdue(c.Request.Context())
	if err != nil {
		appErr := mapBoletoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SweepOverdueResponse{Promoted: promoted})
}

func mapBoletoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBoletoID),
		errors.Is(err, usecase.ErrInvalidNumber),
		errors.Is(err, usecase.ErrInvalidStudentRef),
		errors.Is(err, usecase.ErrInvalidCourseRef),
		errors.Is(err, usecase.ErrInvalidBoletoAmount),
		errors.Is(err, usecase.ErrInvalidDueDate),
		errors.Is(err, usecase.ErrInvalidPixConfig),
		errors.Is(err, usecase.ErrInvalidPaidAmount),
		errors.Is(err, usecase.ErrInvalidBatchSize):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorizedIssuance):
		return pkg.NewDomainErrorSimple("ISSUANCE_NOT_ALLOWED", "Student has no active enrollment in course", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBoletoNotFound):
		return pkg.NewDomainErrorSimple("BOLETO_NOT_FOUND", "Boleto not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadySettled):
		return pkg.NewDomainErrorSimple("BOLETO_ALREADY_SETTLED", "Boleto already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyCanceled):
		return pkg.NewDomainErrorSimple("BOLETO_ALREADY_CANCELED", "Boleto already canceled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Boleto status does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrPixNotEligible):
		return pkg.NewDomainError("PIX_NOT_ELIGIBLE", "Boleto not eligible for pix discount", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAllocationExhausted):
		return pkg.NewDomainErrorSimple("ALLOCATION_EXHAUSTED", "Could not allocate a boleto number, retry", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

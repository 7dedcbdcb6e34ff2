package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/sos_intake_system/internal/config"
	"github.com/shenikar/sos_intake_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	intakeService service.IntakeService
	caseService   service.CaseService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(intakeService service.IntakeService, caseService service.CaseService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		intakeService: intakeService,
		caseService:   caseService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Receive an incoming SOS message
// @Description Twilio-style webhook. Accepts form fields From and Body, always replies with TwiML. Internal dependency failures degrade to a fallback reply, never to an error status.
// @Tags Intake
// @Accept x-www-form-urlencoded
// @Produce xml
// @Param From formData string true "Sender identifier"
// @Param Body formData string true "Message text"
// @Success 200 {object} TwimlResponse
// @Failure 400 {object} map[string]string "Missing required transport fields"
// @Router /webhook/twilio [post]
func (h *Handler) incomingMessage(c *gin.Context) {
	var input IncomingMessageRequest
	log := h.logger.WithField("method", "incomingMessage")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind webhook form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Конвейер не возвращает ошибок: любой внутренний сбой уже
	// деградировал до осмысленного ответа отправителю
	reply := h.intakeService.HandleIncomingMessage(c.Request.Context(), input.From, input.Body)
	c.XML(http.StatusOK, TwimlResponse{Message: reply})
}

// @Summary List recent cases
// @Description Get the most recent cases for the operator board, newest first.
// @Tags Cases
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of cases" default(200)
// @Param status query string false "open for open-only, all for everything" default(open)
// @Success 200 {array} CaseResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases [get]
func (h *Handler) listCases(c *gin.Context) {
	log := h.logger.WithField("method", "listCases")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	openOnly := c.DefaultQuery("status", "open") != "all"

	cases, err := h.caseService.ListRecent(c.Request.Context(), limit, openOnly)
	if err != nil {
		log.WithError(err).Error("Failed to list cases from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCaseResponses(cases))
}

// @Summary Close a case
// @Description Mark a case as rescued/closed. Closing an already closed or unknown case is a harmless no-op. Requires API key.
// @Tags Cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Case ID"
// @Success 200 {object} CloseCaseResponse
// @Failure 400 {object} map[string]string "Invalid case ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cases/{id}/close [post]
func (h *Handler) closeCase(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case ID"})
		return
	}
	log := h.logger.WithField("method", "closeCase").WithField("id", id)

	if err := h.caseService.CloseCase(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to close case in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, CloseCaseResponse{ID: id, Status: "closed"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fahs/internal/domain"
	"fahs/internal/middleware"
	"fahs/internal/service"
)

// SessionHandler handles the intake-wizard session endpoints.
type SessionHandler struct {
	wizardService service.WizardService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(wizardService service.WizardService) *SessionHandler {
	return &SessionHandler{wizardService: wizardService}
}

// Start handles POST /api/v1/sessions
// @Summary Start a wizard session
// @Description Create a fresh intake session at step 1 and return its bearer token
// @Tags sessions
// @Produce json
// @Success 201 {object} Response{data=service.StartSessionOutput} "Session created"
// @Router /sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	out, err := h.wizardService.StartSession(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, out)
}

// Get handles GET /api/v1/sessions/current
// @Summary Get the current session
// @Description Return the session bound to the token, with its staged photos
// @Tags sessions
// @Produce json
// @Success 200 {object} Response{data=service.SessionView} "Current session"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Security BearerAuth
// @Router /sessions/current [get]
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return
	}

	view, err := h.wizardService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// UpdateDetails handles PUT /api/v1/sessions/current/details
// @Summary Update identification fields
// @Description Set the restaurant name and optional commercial register
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body UpdateDetailsRequest true "Identification fields"
// @Success 200 {object} Response{data=domain.WizardSession} "Updated session"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 409 {object} ErrorResponseBody "Session already submitted"
// @Security BearerAuth
// @Router /sessions/current/details [put]
func (h *SessionHandler) UpdateDetails(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return
	}

	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	session, err := h.wizardService.UpdateDetails(c.Request.Context(), sessionID, req.RestaurantName, req.CommercialRegister)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// StagePhoto handles POST /api/v1/sessions/current/photos/:slot
// @Summary Stage a photo into a slot
// @Description Upload a photo (JPG or PNG) for one of the variant's image slots; retaking replaces the prior photo
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Param slot path string true "Image slot" Enums(facade, ceiling, wall, floor_general, lighting)
// @Param photo formData file true "Photo to stage (JPG or PNG)"
// @Success 201 {object} Response{data=domain.StagedPhoto} "Photo staged"
// @Failure 400 {object} ErrorResponseBody "Missing photo or unsupported type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "Photo too large"
// @Security BearerAuth
// @Router /sessions/current/photos/{slot} [post]
func (h *SessionHandler) StagePhoto(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_PHOTO", "photo field is required")
		return
	}
	defer func() { _ = file.Close() }()

	photo, err := h.wizardService.StagePhoto(c.Request.Context(), service.PhotoUploadInput{
		SessionID: sessionID,
		Slot:      domain.ImageSlot(c.Param("slot")),
		File:      file,
		Header:    header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, photo)
}

// PhotoPreview handles GET /api/v1/sessions/current/photos/:slot
// @Summary Get a staged photo preview URL
// @Description Return a presigned URL for the photo currently staged in a slot
// @Tags sessions
// @Produce json
// @Param slot path string true "Image slot"
// @Success 200 {object} Response{data=PreviewResponse} "Preview URL"
// @Failure 400 {object} ErrorResponseBody "No photo staged in slot"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /sessions/current/photos/{slot} [get]
func (h *SessionHandler) PhotoPreview(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return
	}

	url, err := h.wizardService.PhotoPreviewURL(c.Request.Context(), sessionID, domain.ImageSlot(c.Param("slot")))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, PreviewResponse{PreviewURL: url})
}

// RemovePhoto handles DELETE /api/v1/sessions/current/photos/:slot
// @Summary Remove a staged photo
// @Description Delete the photo staged in a slot so it can be retaken
// @Tags sessions
// @Produce json
// @Param slot path string true "Image slot"
// @Success 200 {object} Response{data=MessageResponse} "Photo removed"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /sessions/current/photos/{slot} [delete]
func (h *SessionHandler) RemovePhoto(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return
	}

	if err := h.wizardService.RemovePhoto(c.Request.Context(), sessionID, domain.ImageSlot(c.Param("slot"))); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "photo removed"})
}

// Advance handles POST /api/v1/sessions/current/advance
// @Summary Advance the wizard one step
// @Description Move to the next step; refused if the current step's photo is not staged
// @Tags sessions
// @Produce json
// @Success 200 {object} Response{data=domain.WizardSession} "Session at the new step"
// @Failure 400 {object} ErrorResponseBody "Required photo missing"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /sessions/current/advance [post]
func (h *SessionHandler) Advance(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return
	}

	session, err := h.wizardService.Advance(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// Submit handles POST /api/v1/sessions/current/submit
// @Summary Submit the session for analysis
// @Description Send the staged photos and identification to the analysis service; blocks until the result arrives or the submission times out
// @Tags sessions
// @Produce json
// @Success 200 {object} Response{data=domain.InspectionResult} "Analysis result"
// @Failure 400 {object} ErrorResponseBody "Form incomplete"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 409 {object} ErrorResponseBody "Already submitted or in flight"
// @Failure 502 {object} ErrorResponseBody "Analysis service failure"
// @Failure 504 {object} ErrorResponseBody "Analysis timed out"
// @Security BearerAuth
// @Router /sessions/current/submit [post]
func (h *SessionHandler) Submit(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return
	}

	result, err := h.wizardService.Submit(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

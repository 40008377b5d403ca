package http

import (
	"github.com/gin-gonic/gin"

	"companion-core/pkg/response"
)

// Chat godoc
// @Summary     Chat with the assistant
// @Description Produces a personality-shaped conversational reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Message too long"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newChatResp(output))
}

// ExtractTasks godoc
// @Summary     Extract tasks from free text
// @Description Turns natural-language text into stored task records, optionally mirrored to Google Calendar.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Text to extract from"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Input too long"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/tasks/extract [POST]
func (h *handler) ExtractTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExtractTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newExtractResp(output))
}

// SaveProfile godoc
// @Summary     Create or replace a profile
// @Description Stores a user's name and personality settings. Omitting user_id assigns a new one.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body saveProfileReq true "Profile data"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/profiles [POST]
func (h *handler) SaveProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveProfileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SaveProfile(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveProfile: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newProfileResp(output.Profile))
}

// GetProfile godoc
// @Summary     Get a profile
// @Description Returns a user profile by id.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} profileResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/profiles/{id} [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetProfile(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetProfile: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newProfileResp(output.Profile))
}

// ListTasks godoc
// @Summary     List a user's tasks
// @Description Returns the stored tasks of a user, newest first.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/profiles/{id}/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTasks(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListTasksResp(output))
}

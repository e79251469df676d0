package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// MessageHandler serves the caller's notification inbox.
type MessageHandler struct {
	messages ports.MessageRepository
}

func NewMessageHandler(messages ports.MessageRepository) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// ListMine returns the caller's messages, newest first.
//
// @Summary      List my messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Message
// @Router       /messages [get]
func (h *MessageHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	messages, err := h.messages.ListByRecipient(c.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

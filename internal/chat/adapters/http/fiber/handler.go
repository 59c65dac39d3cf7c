package fiber

import (
	"context"
	"errors"
	"net/http"

	"support-analytics-service/internal/chat/core/domain"
	"support-analytics-service/internal/chat/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ConversationsUseCase interface {
	List(ctx context.Context, in usecase.ListConversationsInput) (*domain.ConversationPage, error)
	Get(ctx context.Context, id string) (*domain.ConversationDetail, error)
}

type MessagesUseCase interface {
	Recent(ctx context.Context, limit int) ([]domain.MessageHistoryEntry, error)
	Search(ctx context.Context, term string) (*domain.SearchResult, error)
}

type ChatHandler struct {
	conversations ConversationsUseCase
	messages      MessagesUseCase
	log           *logrus.Entry
}

func NewChatHandler(conversations ConversationsUseCase, messages MessagesUseCase, log *logrus.Entry) *ChatHandler {
	return &ChatHandler{conversations: conversations, messages: messages, log: log}
}

func (h *ChatHandler) Register(r fiber.Router) {
	r.Get("/conversations", h.ListConversations)
	r.Get("/conversations/:id", h.GetConversation)
	r.Get("/messages", h.RecentMessages)
	r.Get("/search", h.Search)
}

// ListConversations godoc
// @Summary List conversations
// @Description Paginated conversations, newest first
// @Tags Chat
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "Status filter"
// @Param platform query string false "Platform filter"
// @Success 200 {object} ConversationListEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /api/chat/conversations [get]
func (h *ChatHandler) ListConversations(c *fiber.Ctx) error {
	in := usecase.ListConversationsInput{
		Page:  c.QueryInt("page", domain.DefaultPage),
		Limit: c.QueryInt("limit", domain.DefaultPageSize),
	}
	if s := c.Query("status"); s != "" {
		in.Status = &s
	}
	if p := c.Query("platform"); p != "" {
		in.Platform = &p
	}

	page, err := h.conversations.List(c.UserContext(), in)
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Failed to fetch conversations", err)
	}

	return c.Status(http.StatusOK).JSON(ConversationListEnvelope{
		Success:    true,
		Data:       toConversationList(page.Items),
		Pagination: toPaginationResponse(page.Pagination),
	})
}

// GetConversation godoc
// @Summary Conversation detail
// @Description A conversation with its messages in chronological order
// @Tags Chat
// @Produce json
// @Param id path string true "Conversation UUID"
// @Success 200 {object} ConversationDetailEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/chat/conversations/{id} [get]
func (h *ChatHandler) GetConversation(c *fiber.Ctx) error {
	detail, err := h.conversations.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidConversationID):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Success: false,
				Error:   "Invalid conversation id",
			})
		case errors.Is(err, domain.ErrConversationNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Success: false,
				Error:   "Conversation not found",
			})
		default:
			return h.fail(c, http.StatusInternalServerError, "Failed to fetch conversation", err)
		}
	}

	return c.Status(http.StatusOK).JSON(ConversationDetailEnvelope{
		Success: true,
		Data:    toConversationDetail(detail),
	})
}

// RecentMessages godoc
// @Summary Recent messages
// @Description Latest messages across all conversations
// @Tags Chat
// @Produce json
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {object} MessageHistoryEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /api/chat/messages [get]
func (h *ChatHandler) RecentMessages(c *fiber.Ctx) error {
	rows, err := h.messages.Recent(c.UserContext(), c.QueryInt("limit", domain.DefaultMessageLimit))
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Failed to fetch messages", err)
	}

	return c.Status(http.StatusOK).JSON(MessageHistoryEnvelope{
		Success: true,
		Data:    toMessageHistory(rows),
	})
}

// Search godoc
// @Summary Search
// @Description Case-insensitive substring search over customers and message content
// @Tags Chat
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} SearchEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/chat/search [get]
func (h *ChatHandler) Search(c *fiber.Ctx) error {
	res, err := h.messages.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		if errors.Is(err, usecase.ErrEmptySearchTerm) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Success: false,
				Error:   "Search term is required (q parameter)",
			})
		}
		return h.fail(c, http.StatusInternalServerError, "Search failed", err)
	}

	return c.Status(http.StatusOK).JSON(SearchEnvelope{
		Success: true,
		Data:    toSearchResponse(res),
	})
}

func (h *ChatHandler) fail(c *fiber.Ctx, status int, label string, err error) error {
	if h.log != nil {
		h.log.WithError(err).WithField("path", c.Path()).Error(label)
	}
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   label,
		Message: err.Error(),
	})
}

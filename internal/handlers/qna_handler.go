package handlers

import (
	"log"

	"glowmart/internal/middleware"
	"glowmart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// QnAHandler handles product questions. Asking is open to shoppers;
// answering and removal are admin-only.
type QnAHandler struct {
	service     *services.QnAService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewQnAHandler creates a new QnAHandler.
func NewQnAHandler(service *services.QnAService, authService *services.AuthService) *QnAHandler {
	return &QnAHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the Q&A routes with the Fiber app.
func (h *QnAHandler) RegisterRoutes(router fiber.Router) {
	admin := []fiber.Handler{middleware.AuthRequired(h.authService), middleware.AdminRequired()}

	qnaRoutes := router.Group("/qna")
	qnaRoutes.Post("/", h.HandleAskQuestion)
	qnaRoutes.Patch("/:id/answer", append(admin, h.HandleAnswerQuestion)...)
	qnaRoutes.Delete("/:id", append(admin, h.HandleDeleteQuestion)...)
}

// AskQuestionRequest is the ask-a-question form.
type AskQuestionRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Question  string `json:"question" validate:"required,max=2000"`
}

// HandleAskQuestion records a question on a product.
func (h *QnAHandler) HandleAskQuestion(c *fiber.Ctx) error {
	var req AskQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing question request body: %v", err)
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	question, err := h.service.Ask(req.ProductID, req.Question)
	if err != nil {
		log.Printf("Error asking question: %v", err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, question)
}

// AnswerRequest carries the back-office reply.
type AnswerRequest struct {
	Answer string `json:"answer" validate:"required,max=2000"`
}

// HandleAnswerQuestion records the reply to a question.
func (h *QnAHandler) HandleAnswerQuestion(c *fiber.Ctx) error {
	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	question, err := h.service.Answer(c.Params("id"), req.Answer)
	if err != nil {
		log.Printf("Error answering question %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, question)
}

// HandleDeleteQuestion removes a question.
func (h *QnAHandler) HandleDeleteQuestion(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		log.Printf("Error deleting question %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Question deleted")
}

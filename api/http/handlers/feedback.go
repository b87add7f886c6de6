package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/screening/api/http/presenter"
	"github.com/artem13815/screening/pkg/feedback"
)

type FeedbackHandler struct {
	svc feedback.UseCase
}

func NewFeedbackHandler(svc feedback.UseCase) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

type feedbackRequest struct {
	CandidateID       string   `json:"candidate_id"`
	PredictedScore    float64  `json:"predicted_score"`
	PredictedCategory string   `json:"predicted_category"`
	ActualScore       *float64 `json:"actual_score"`
	ActualCategory    string   `json:"actual_category"`
	HRFeedback        string   `json:"hr_feedback"`
}

// Submit сохраняет оценку HR по кандидату для последующего дообучения модели.
// @Summary Обратная связь HR
// @Description Принимает исправленный балл и категорию кандидата; записи только добавляются.
// @Tags    Фидбэк
// @Accept  json
// @Produce json
// @Param   input body feedbackRequest true "фидбэк по кандидату"
// @Security BearerAuth
// @Success 201 {object} feedback.Feedback
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /feedback [post]
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	candidateID, err := uuid.Parse(strings.TrimSpace(req.CandidateID))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid candidate_id")
	}
	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, _ := uuid.Parse(ownerIDStr)

	saved, err := h.svc.Submit(c.Context(), ownerID, feedback.Feedback{
		CandidateID:       candidateID,
		PredictedScore:    req.PredictedScore,
		PredictedCategory: req.PredictedCategory,
		ActualScore:       req.ActualScore,
		ActualCategory:    strings.TrimSpace(req.ActualCategory),
		HRFeedback:        req.HRFeedback,
	})
	if err != nil {
		if errors.Is(err, feedback.ErrCandidateNotFound) {
			return presenter.Error(c, http.StatusNotFound, "candidate not found")
		}
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusCreated, saved)
}

package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/artem13815/screening/api/http/presenter"
	"github.com/artem13815/screening/pkg/resume"
	"github.com/artem13815/screening/pkg/screening"
)

type ScreeningHandler struct {
	svc screening.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	baseDir  string
}

func NewScreeningHandler(svc screening.UseCase, maxBytes int64, baseDir string) *ScreeningHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &ScreeningHandler{svc: svc, maxBytes: maxBytes, baseDir: baseDir}
}

// Content types a resume upload may declare.
var allowedResumeTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/msword": {},
}

func allowedResumeType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	_, ok := allowedResumeTypes[strings.ToLower(strings.TrimSpace(mediaType))]
	return ok
}

// Upload принимает резюме (PDF/DOCX), прогоняет его через полный пайплайн
// скоринга и сохраняет кандидата.
// @Summary Скрининг резюме
// @Description Принимает файл резюме (PDF или DOCX) и описание вакансии, извлекает профиль кандидата и считает итоговый балл соответствия.
// @Tags    Скрининг
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF или DOCX)"
// @Param   job_description formData string false "Описание вакансии"
// @Param   candidate_name formData string false "Имя кандидата"
// @Param   background formData string false "Дополнительный контекст о кандидате"
// @Security BearerAuth
// @Success 201 {object} screening.Candidate
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /screening/resumes [post]
func (h *ScreeningHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !allowedResumeType(ct) {
		return presenter.Error(c, http.StatusBadRequest,
			fmt.Sprintf("unsupported content type %q: only pdf and docx resumes are accepted", ct))
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if len(data) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "uploaded file is empty")
	}

	// Persist the raw upload before scoring so the original is never lost.
	if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(h.baseDir, uuid.New().String()+ext)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
	}

	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, _ := uuid.Parse(ownerIDStr)

	cand, err := h.svc.Screen(c.Context(), screening.Request{
		FileBytes:      data,
		Filename:       fh.Filename,
		ContentType:    fh.Header.Get("Content-Type"),
		JobDescription: strings.TrimSpace(c.FormValue("job_description")),
		CandidateName:  strings.TrimSpace(c.FormValue("candidate_name")),
		Background:     strings.TrimSpace(c.FormValue("background")),
		StorageURI:     dst,
		OwnerID:        ownerID,
	})
	if err != nil {
		var formatErr *resume.FormatError
		// Unsupported and unreadable documents are rejected inputs, not
		// server failures.
		if errors.As(err, &formatErr) || errors.Is(err, resume.ErrUnreadable) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("screening failed: %v", err))
	}
	return presenter.JSON(c, http.StatusCreated, cand)
}

type scoreRequest struct {
	ResumeText      string   `json:"resume_text"`
	JobDescription  string   `json:"job_description"`
	Skills          []string `json:"skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceYears *float64 `json:"experience_years"`
}

// Score считает композитный балл по уже извлечённым сигналам, без сохранения.
// @Summary Ручной скоринг
// @Description Принимает извлечённые навыки и текст резюме, возвращает итоговый балл без записи в хранилище.
// @Tags    Скрининг
// @Accept  json
// @Produce json
// @Param   input body scoreRequest true "сигналы для скоринга"
// @Security BearerAuth
// @Success 200 {object} scoring.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /screening/score [post]
func (h *ScreeningHandler) Score(c *fiber.Ctx) error {
	var req scoreRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return presenter.Error(c, http.StatusBadRequest, "resume_text is required")
	}
	result, err := h.svc.Score(c.Context(), screening.ScoreInput{
		ResumeText:      req.ResumeText,
		JobDescription:  req.JobDescription,
		Skills:          req.Skills,
		MissingSkills:   req.MissingSkills,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("scoring failed: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, result)
}

// Get возвращает одного кандидата владельца.
// @Summary Карточка кандидата
// @Tags    Скрининг
// @Produce json
// @Param   id path string true "ID кандидата"
// @Security BearerAuth
// @Success 200 {object} screening.Candidate
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /screening/candidates/{id} [get]
func (h *ScreeningHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid candidate id")
	}
	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, _ := uuid.Parse(ownerIDStr)

	cand, err := h.svc.Candidate(c.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return presenter.Error(c, http.StatusNotFound, "candidate not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load candidate")
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

// List возвращает кандидатов владельца постранично.
// @Summary Список кандидатов
// @Tags    Скрининг
// @Produce json
// @Param   limit query int false "Максимум записей (default 50)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /screening/candidates [get]
func (h *ScreeningHandler) List(c *fiber.Ctx) error {
	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, _ := uuid.Parse(ownerIDStr)
	limit, offset := parseLimitOffset(c, 50)

	items, err := h.svc.List(c.Context(), ownerID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list candidates")
	}
	if items == nil {
		items = []screening.Candidate{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// Dashboard возвращает аналитическую сводку по кандидатам владельца.
// @Summary Дашборд скрининга
// @Description Кандидаты по убыванию итогового балла плюс аналитика: средний балл, распределение категорий и опыта, частые недостающие навыки, топ кандидатов.
// @Tags    Скрининг
// @Produce json
// @Security BearerAuth
// @Success 200 {object} screening.Dashboard
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /screening/dashboard [get]
func (h *ScreeningHandler) Dashboard(c *fiber.Ctx) error {
	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, _ := uuid.Parse(ownerIDStr)

	board, err := h.svc.Dashboard(c.Context(), ownerID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to build dashboard")
	}
	return presenter.JSON(c, http.StatusOK, board)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}

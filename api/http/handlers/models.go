package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/screening/api/http/presenter"
	"github.com/artem13815/screening/pkg/classify"
)

// ModelsHandler exposes the serving classifier state and reload trigger.
type ModelsHandler struct {
	loader *classify.Loader
}

func NewModelsHandler(loader *classify.Loader) *ModelsHandler {
	return &ModelsHandler{loader: loader}
}

// Status сообщает состояние обслуживаемой модели классификатора.
// @Summary Статус модели
// @Tags    Модели
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /models/status [get]
func (h *ModelsHandler) Status(c *fiber.Ctx) error {
	resp := fiber.Map{
		"name":   h.loader.Name(),
		"loaded": h.loader.Loaded(),
	}
	if h.loader.Loaded() {
		if cls, err := h.loader.Get(c.Context()); err == nil {
			resp["model_type"] = cls.Kind()
			resp["categories"] = cls.Categories()
		}
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// Reload подменяет обслуживаемую модель свежей копией артефактов с диска.
// @Summary Перезагрузка модели
// @Description Загружает артефакты модели с диска и атомарно подменяет обслуживаемое поколение.
// @Tags    Модели
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /models/reload [post]
func (h *ModelsHandler) Reload(c *fiber.Ctx) error {
	if err := h.loader.Reload(c.Context()); err != nil {
		if errors.Is(err, classify.ErrModelNotFound) {
			return presenter.Error(c, http.StatusNotFound, "model artifacts not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to reload model: "+err.Error())
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"name":   h.loader.Name(),
		"loaded": h.loader.Loaded(),
	})
}

package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints of the trivia API.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers over the trivia service.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "trivia_http").Logger(),
	}
}

// HandleCategories handles GET /categories.
func (h *HTTPHandlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// HandleQuestions handles GET /questions (paginated listing) and
// POST /questions (create).
func (h *HTTPHandlers) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createQuestion(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.Questions(r.Context(), pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       orEmpty(listing.Questions),
		"total_questions": listing.Total,
		"categories":      listing.Categories,
	})
}

func (h *HTTPHandlers) createQuestion(w http.ResponseWriter, r *http.Request) {
	var in CreateQuestionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httperrors.Respond(w, http.StatusBadRequest)
		return
	}

	result, err := h.service.Create(r.Context(), in, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":         true,
		"created":         result.Created,
		"questions":       orEmpty(result.Questions),
		"total_questions": result.Total,
	})
}

// HandleQuestionByID handles DELETE /questions/{id}.
func (h *HTTPHandlers) HandleQuestionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	total, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deleted":         id,
		"total_questions": total,
	})
}

// HandleSearchQuestions handles POST /questions/search.
func (h *HTTPHandlers) HandleSearchQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req struct {
		SearchTerm string `json:"searchTerm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.Respond(w, http.StatusBadRequest)
		return
	}

	page, err := h.service.Search(r.Context(), req.SearchTerm, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       orEmpty(page.Questions),
		"total_questions": page.Total,
	})
}

// HandleCategoryQuestions handles GET /categories/{id}/questions.
func (h *HTTPHandlers) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.service.ByCategory(r.Context(), categoryID, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        orEmpty(result.Questions),
		"total_questions":  result.Total,
		"current_category": result.CategoryType,
	})
}

// HandleQuizzes handles POST /quizzes.
func (h *HTTPHandlers) HandleQuizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req struct {
		QuizCategory *struct {
			ID int `json:"id"`
		} `json:"quiz_category"`
		PreviousQuestions []int `json:"previous_questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.Respond(w, http.StatusBadRequest)
		return
	}
	if req.QuizCategory == nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	question, err := h.service.NextQuizQuestion(r.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	// Exhausted candidates end the quiz: success with no question field.
	resp := map[string]interface{}{"success": true}
	if question != nil {
		resp["question"] = question
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrInvalidInput):
		httperrors.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// pageParam reads the 1-based page query parameter, defaulting to the first
// page when absent or unparseable.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

func orEmpty(questions []Question) []Question {
	if questions == nil {
		return []Question{}
	}
	return questions
}

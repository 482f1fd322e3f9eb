package trivia

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(questions []Question) *HTTPHandlers {
	svc, _, _, _ := newTestService(questions)
	return NewHTTPHandlers(svc, zerolog.Nop())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleCategories(t *testing.T) {
	h := newTestHandlers(nil)

	rec := httptest.NewRecorder()
	h.HandleCategories(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Science", body["categories"].(map[string]interface{})["1"])
}

func TestHandleCategoriesWrongMethod(t *testing.T) {
	h := newTestHandlers(nil)

	rec := httptest.NewRecorder()
	h.HandleCategories(rec, httptest.NewRequest(http.MethodPost, "/categories", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "method not allowed", body["message"])
}

func TestListQuestionsReturnsPageAndTotal(t *testing.T) {
	h := newTestHandlers(seedQuestions(25))

	rec := httptest.NewRecorder()
	h.HandleQuestions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["questions"], QuestionsPerPage)
	assert.EqualValues(t, 25, body["total_questions"])
	assert.NotEmpty(t, body["categories"])
}

func TestListQuestionsPageBeyondDataIs404(t *testing.T) {
	h := newTestHandlers(seedQuestions(25))

	rec := httptest.NewRecorder()
	h.HandleQuestions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "resource not found", body["message"])
}

func TestDeleteQuestion(t *testing.T) {
	h := newTestHandlers(seedQuestions(5))

	req := httptest.NewRequest(http.MethodDelete, "/questions/4", nil)
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()
	h.HandleQuestionByID(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 4, body["deleted"])
	assert.EqualValues(t, 4, body["total_questions"])
}

func TestDeleteMissingQuestionIs404(t *testing.T) {
	h := newTestHandlers(seedQuestions(5))

	req := httptest.NewRequest(http.MethodDelete, "/questions/999", nil)
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()
	h.HandleQuestionByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteNonNumericIDIs404(t *testing.T) {
	h := newTestHandlers(seedQuestions(5))

	req := httptest.NewRequest(http.MethodDelete, "/questions/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.HandleQuestionByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateQuestion(t *testing.T) {
	h := newTestHandlers(seedQuestions(3))

	payload := `{"question":"What is the heaviest organ in the human body?","answer":"The Liver","category":1,"difficulty":4}`
	rec := httptest.NewRecorder()
	h.HandleQuestions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 4, body["created"])
	assert.EqualValues(t, 4, body["total_questions"])
	assert.Len(t, body["questions"], 4)
}

func TestCreateQuestionEmptyFieldsIs422(t *testing.T) {
	h := newTestHandlers(nil)

	payload := `{"question":"","answer":"","category":1,"difficulty":1}`
	rec := httptest.NewRecorder()
	h.HandleQuestions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "request cannot be processed", body["message"])
}

func TestCreateQuestionMalformedBodyIs400(t *testing.T) {
	h := newTestHandlers(nil)

	rec := httptest.NewRecorder()
	h.HandleQuestions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchQuestions(t *testing.T) {
	h := newTestHandlers([]Question{
		{ID: 1, Question: "Whose autobiography is entitled I Know Why the Caged Bird Sings?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{ID: 2, Question: "What movie earned Tom Hanks his third Oscar nomination?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
	})

	rec := httptest.NewRecorder()
	h.HandleSearchQuestions(rec, httptest.NewRequest(http.MethodPost, "/questions/search", strings.NewReader(`{"searchTerm":"title"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.HandleSearchQuestions(rec, httptest.NewRequest(http.MethodPost, "/questions/search", strings.NewReader(`{"searchTerm":"oscar"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["questions"], 1)
	assert.EqualValues(t, 1, body["total_questions"])
}

func TestCategoryQuestions(t *testing.T) {
	h := newTestHandlers(seedQuestions(12))

	req := httptest.NewRequest(http.MethodGet, "/categories/1/questions", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.HandleCategoryQuestions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Science", body["current_category"])
	for _, raw := range body["questions"].([]interface{}) {
		q := raw.(map[string]interface{})
		assert.EqualValues(t, 1, q["category"])
	}
}

func TestCategoryQuestionsUnknownCategoryIs404(t *testing.T) {
	h := newTestHandlers(seedQuestions(5))

	req := httptest.NewRequest(http.MethodGet, "/categories/42/questions", nil)
	req.SetPathValue("id", "42")
	rec := httptest.NewRecorder()
	h.HandleCategoryQuestions(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestQuizzesReturnsUnseenQuestion(t *testing.T) {
	h := newTestHandlers(seedQuestions(6))

	payload := `{"quiz_category":{"id":1},"previous_questions":[3]}`
	rec := httptest.NewRecorder()
	h.HandleQuizzes(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	q := body["question"].(map[string]interface{})
	assert.NotEqualValues(t, 3, q["id"])
	assert.EqualValues(t, 1, q["category"])
}

func TestQuizzesExhaustedOmitsQuestion(t *testing.T) {
	h := newTestHandlers(seedQuestions(2))

	payload := `{"quiz_category":{"id":0},"previous_questions":[1,2]}`
	rec := httptest.NewRecorder()
	h.HandleQuizzes(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "question")
}

func TestQuizzesMissingCategoryIs422(t *testing.T) {
	h := newTestHandlers(seedQuestions(2))

	rec := httptest.NewRecorder()
	h.HandleQuizzes(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(`{"previous_questions":[]}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

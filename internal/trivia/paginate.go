package trivia

// paginate returns the 1-based page window of size QuestionsPerPage.
// Pages at or below zero are read as the first page; a page past the end of
// the data yields an empty slice, which callers treat as not found where the
// endpoint contract says so.
func paginate(questions []Question, page int) []Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return nil
	}
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

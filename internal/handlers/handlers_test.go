package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GeniusPlums/supreme-succotash/internal/middleware"
	"github.com/GeniusPlums/supreme-succotash/internal/models"
	"github.com/GeniusPlums/supreme-succotash/internal/services"
	"github.com/GeniusPlums/supreme-succotash/internal/testutil"
	"github.com/GeniusPlums/supreme-succotash/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	auth   *services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	hub := ws.NewHub()

	authService := services.NewAuthService("test-secret", "admin", "opinion5")
	contestService := services.NewContestService(db)
	questionService := services.NewQuestionService(db)
	participantService := services.NewParticipantService(db, contestService)
	scoringService := services.NewScoringService(db)

	authHandler := NewAuthHandler(authService)
	contestHandler := NewContestHandler(contestService, questionService, participantService, hub)
	participantHandler := NewParticipantHandler(participantService, hub)
	leaderboardHandler := NewLeaderboardHandler(scoringService)
	cmsContestHandler := NewCMSContestHandler(contestService)
	cmsQuestionHandler := NewCMSQuestionHandler(questionService)
	cmsScoringHandler := NewCMSScoringHandler(questionService, scoringService, hub)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/contest", contestHandler.GetActiveContest)
		api.GET("/contest/:contestId/questions", contestHandler.GetQuestions)
		api.POST("/contest/:contestId/join", contestHandler.Join)
		api.GET("/contest/:contestId/leaderboard", leaderboardHandler.GetLeaderboard)
		api.POST("/participant/:participantId/selections", participantHandler.SubmitSelections)
		api.GET("/participant/session/:sessionId", participantHandler.GetBySession)

		cms := api.Group("/cms")
		{
			cms.POST("/login", authHandler.Login)
			authed := cms.Group("")
			authed.Use(middleware.AdminAuth(authService))
			{
				authed.GET("/verify", authHandler.Verify)
				authed.GET("/contests", cmsContestHandler.ListContests)
				authed.POST("/contests", cmsContestHandler.CreateContest)
				authed.PUT("/contests/:id", cmsContestHandler.UpdateContest)
				authed.DELETE("/contests/:id", cmsContestHandler.DeleteContest)
				authed.GET("/questions", cmsQuestionHandler.ListQuestions)
				authed.POST("/questions", cmsQuestionHandler.CreateQuestion)
				authed.PUT("/questions/:id", cmsQuestionHandler.UpdateQuestion)
				authed.DELETE("/questions/:id", cmsQuestionHandler.DeleteQuestion)
				authed.POST("/contest/:contestId/answers", cmsScoringHandler.UpdateAnswers)
				authed.POST("/contest/:contestId/calculate", cmsScoringHandler.Calculate)
			}
		}
	}

	return &testEnv{db: db, router: r, auth: authService}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, err := e.auth.GenerateToken("admin")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func fiveSelections(questions []models.Question, option string) []models.Selection {
	sels := make([]models.Selection, 5)
	for i := 0; i < 5; i++ {
		sels[i] = models.Selection{QuestionID: questions[i].ID, SelectedOption: option}
	}
	return sels
}

func TestGetActiveContest(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "GET", "/api/contest", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("no contest: status = %d, want 404", w.Code)
	}

	contest := testutil.CreateContest(t, env.db)

	w = env.request(t, "GET", "/api/contest", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got models.Contest
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != contest.ID {
		t.Errorf("contest id = %d, want %d", got.ID, contest.ID)
	}
}

func TestGetQuestionsOrdered(t *testing.T) {
	env := newTestEnv(t)
	contest := testutil.CreateContest(t, env.db)
	testutil.CreateQuestions(t, env.db, contest.ID, 11)

	w := env.request(t, "GET", fmt.Sprintf("/api/contest/%d/questions", contest.ID), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var questions []models.Question
	if err := json.Unmarshal(w.Body.Bytes(), &questions); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(questions) != 11 {
		t.Fatalf("got %d questions, want 11", len(questions))
	}
	for i, q := range questions {
		if q.QuestionNumber != i+1 {
			t.Errorf("question %d has number %d, want %d", i, q.QuestionNumber, i+1)
		}
	}
}

func TestJoinContest(t *testing.T) {
	env := newTestEnv(t)
	contest := testutil.CreateContest(t, env.db)

	body := JoinRequest{SessionID: "sess-1", Name: "Alice"}
	w := env.request(t, "POST", fmt.Sprintf("/api/contest/%d/join", contest.ID), body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var first services.JoinResult
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !first.Created {
		t.Error("first join should create")
	}

	// Same session joins again: same participant, no second increment.
	w = env.request(t, "POST", fmt.Sprintf("/api/contest/%d/join", contest.ID), body, "")
	var second services.JoinResult
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if second.Created {
		t.Error("second join should resume")
	}
	if first.Participant.ID != second.Participant.ID {
		t.Errorf("ids differ: %d vs %d", first.Participant.ID, second.Participant.ID)
	}

	var updated models.Contest
	env.db.First(&updated, contest.ID)
	if updated.TotalParticipants != 1 {
		t.Errorf("TotalParticipants = %d, want 1", updated.TotalParticipants)
	}

	// Unknown contest.
	w = env.request(t, "POST", "/api/contest/999/join", body, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown contest: status = %d, want 404", w.Code)
	}
}

func TestSubmitSelections(t *testing.T) {
	env := newTestEnv(t)
	contest := testutil.CreateContest(t, env.db)
	questions := testutil.CreateQuestions(t, env.db, contest.ID, 11)
	p := testutil.CreateParticipant(t, env.db, contest.ID, "Subber", "s1", nil)

	path := fmt.Sprintf("/api/participant/%d/selections", p.ID)

	tests := []struct {
		name       string
		selections []models.Selection
		wantStatus int
	}{
		{"too few", fiveSelections(questions, "B")[:3], http.StatusBadRequest},
		{"too many", append(fiveSelections(questions, "B"), models.Selection{QuestionID: questions[5].ID, SelectedOption: "A"}), http.StatusBadRequest},
		{"empty", []models.Selection{}, http.StatusBadRequest},
		{"valid", fiveSelections(questions, "B"), http.StatusOK},
		{"resubmit", fiveSelections(questions, "B"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(t, "POST", path, SubmitSelectionsRequest{Selections: tt.selections}, "")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}

	// Unknown participant.
	w := env.request(t, "POST", "/api/participant/999/selections",
		SubmitSelectionsRequest{Selections: fiveSelections(questions, "B")}, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown participant: status = %d, want 404", w.Code)
	}
}

func TestGetParticipantBySession(t *testing.T) {
	env := newTestEnv(t)
	contest := testutil.CreateContest(t, env.db)
	p := testutil.CreateParticipant(t, env.db, contest.ID, "Finder", "sess-find", nil)

	w := env.request(t, "GET", "/api/participant/session/sess-find", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got models.Participant
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("id = %d, want %d", got.ID, p.ID)
	}

	w = env.request(t, "GET", "/api/participant/session/missing", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing session: status = %d, want 404", w.Code)
	}
}

func TestAnswersAndLeaderboardFlow(t *testing.T) {
	env := newTestEnv(t)
	contest := testutil.CreateContest(t, env.db)
	questions := testutil.CreateQuestions(t, env.db, contest.ID, 11)

	testutil.CreateParticipant(t, env.db, contest.ID, "Winner", "s1",
		models.SelectionList(fiveSelections(questions, "B")))
	testutil.CreateParticipant(t, env.db, contest.ID, "Loser", "s2",
		models.SelectionList(fiveSelections(questions, "C")))

	token := env.adminToken(t)

	answers := make([]services.AnswerUpdate, 5)
	for i := 0; i < 5; i++ {
		answers[i] = services.AnswerUpdate{QuestionID: questions[i].ID, CorrectAnswer: "B"}
	}
	w := env.request(t, "POST", fmt.Sprintf("/api/cms/contest/%d/answers", contest.ID),
		UpdateAnswersRequest{Answers: answers}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("answers: status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	w = env.request(t, "GET", fmt.Sprintf("/api/contest/%d/leaderboard", contest.ID), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard: status = %d, want 200", w.Code)
	}

	var rows []services.LeaderboardRow
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("failed to decode leaderboard: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Name != "Winner" || rows[0].Rank != 1 || rows[0].Points != 500 {
		t.Errorf("top row = %+v, want Winner rank 1 points 500", rows[0])
	}
	if rows[1].Name != "Loser" || rows[1].Rank != 2 || rows[1].Points != 0 {
		t.Errorf("second row = %+v, want Loser rank 2 points 0", rows[1])
	}
}

func TestCMSLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/api/cms/login", LoginRequest{Username: "admin", Password: "opinion5"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}

	// The issued token passes verification.
	w = env.request(t, "GET", "/api/cms/verify", nil, resp.Token)
	if w.Code != http.StatusOK {
		t.Errorf("verify: status = %d, want 200", w.Code)
	}

	w = env.request(t, "POST", "/api/cms/login", LoginRequest{Username: "admin", Password: "wrong"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad credentials: status = %d, want 401", w.Code)
	}
}

func TestCMSRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/cms/contests"},
		{"GET", "/api/cms/questions"},
		{"POST", "/api/cms/contest/1/calculate"},
	}
	for _, p := range paths {
		w := env.request(t, p.method, p.path, nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want 401", p.method, p.path, w.Code)
		}
	}

	w := env.request(t, "GET", "/api/cms/contests", nil, token)
	if w.Code != http.StatusOK {
		t.Errorf("with token: status = %d, want 200", w.Code)
	}
}

func TestCMSQuestionCRUD(t *testing.T) {
	env := newTestEnv(t)
	contest := testutil.CreateContest(t, env.db)
	token := env.adminToken(t)

	create := QuestionRequest{
		ContestID:      contest.ID,
		QuestionNumber: 1,
		Category:       "Football",
		QuestionText:   "Who wins?",
		OptionA:        "Home",
		OptionB:        "Away",
		OptionC:        "Draw",
	}
	w := env.request(t, "POST", "/api/cms/questions", create, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	var created models.Question
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode question: %v", err)
	}
	if created.VotesA != 30000 || created.VotesB != 50000 || created.VotesC != 70000 {
		t.Errorf("default votes = %d/%d/%d, want 30000/50000/70000", created.VotesA, created.VotesB, created.VotesC)
	}

	create.QuestionText = "Who really wins?"
	w = env.request(t, "PUT", fmt.Sprintf("/api/cms/questions/%d", created.ID), create, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, want 200", w.Code)
	}

	w = env.request(t, "DELETE", fmt.Sprintf("/api/cms/questions/%d", created.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d, want 200", w.Code)
	}

	w = env.request(t, "DELETE", fmt.Sprintf("/api/cms/questions/%d", created.ID), nil, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete again: status = %d, want 404", w.Code)
	}
}

func TestCMSAnswersValidation(t *testing.T) {
	env := newTestEnv(t)
	contest := testutil.CreateContest(t, env.db)
	questions := testutil.CreateQuestions(t, env.db, contest.ID, 2)
	token := env.adminToken(t)

	path := fmt.Sprintf("/api/cms/contest/%d/answers", contest.ID)

	// Not an array.
	w := env.request(t, "POST", path, gin.H{"answers": "B"}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-array answers: status = %d, want 400", w.Code)
	}

	// Invalid letter.
	w = env.request(t, "POST", path, UpdateAnswersRequest{
		Answers: []services.AnswerUpdate{{QuestionID: questions[0].ID, CorrectAnswer: "D"}},
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid letter: status = %d, want 400", w.Code)
	}

	// Question from another contest.
	w = env.request(t, "POST", path, UpdateAnswersRequest{
		Answers: []services.AnswerUpdate{{QuestionID: 9999, CorrectAnswer: "A"}},
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("foreign question: status = %d, want 400", w.Code)
	}
}

package database

import (
	"log"
	"time"

	"github.com/GeniusPlums/supreme-succotash/internal/models"

	"gorm.io/gorm"
)

// Seed loads the demo "Opinion 5" contest with its 11 sports questions and a
// handful of sample leaderboard rows. It is a no-op when any contest exists,
// so restarts never duplicate data.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Contest{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("contest data already exists, skipping seed")
		return nil
	}

	contest := models.Contest{
		Name:              "Opinion 5 - Sports Edition",
		Description:       "Pick 5 winning opinions from 11 sports questions",
		Prize:             "₹1,000",
		StartTime:         time.Now(),
		EndTime:           time.Now().Add(5 * time.Hour),
		IsActive:          true,
		TotalParticipants: 247,
	}
	if err := db.Create(&contest).Error; err != nil {
		return err
	}

	questions := []models.Question{
		{QuestionNumber: 1, Category: "Football", QuestionText: "Which team will have the most possession in today's match?",
			OptionA: "Manchester United", OptionB: "Liverpool FC", OptionC: "Draw/Equal",
			VotesA: 30000, VotesB: 50000, VotesC: 70000},
		{QuestionNumber: 2, Category: "Basketball", QuestionText: "Who will score the most 3-pointers in tonight's NBA game?",
			OptionA: "Stephen Curry", OptionB: "Damian Lillard", OptionC: "Klay Thompson",
			VotesA: 85000, VotesB: 42000, VotesC: 63000},
		{QuestionNumber: 3, Category: "Tennis", QuestionText: "Which surface will have the longest rally in today's tennis matches?",
			OptionA: "Clay Court", OptionB: "Hard Court", OptionC: "Grass Court",
			VotesA: 95000, VotesB: 28000, VotesC: 15000},
		{QuestionNumber: 4, Category: "Cricket", QuestionText: "Which batting position will score the most runs today?",
			OptionA: "Opening Batsmen (1-2)", OptionB: "Middle Order (3-6)", OptionC: "Lower Order (7-11)",
			VotesA: 67000, VotesB: 88000, VotesC: 23000},
		{QuestionNumber: 5, Category: "Soccer", QuestionText: "Which league will have the most goals scored this weekend?",
			OptionA: "Premier League", OptionB: "La Liga", OptionC: "Serie A",
			VotesA: 72000, VotesB: 54000, VotesC: 38000},
		{QuestionNumber: 6, Category: "Baseball", QuestionText: "Which team will hit the most home runs today?",
			OptionA: "New York Yankees", OptionB: "Los Angeles Dodgers", OptionC: "Houston Astros",
			VotesA: 45000, VotesB: 67000, VotesC: 52000},
		{QuestionNumber: 7, Category: "Hockey", QuestionText: "Which position will score the most goals tonight?",
			OptionA: "Center", OptionB: "Winger", OptionC: "Defenseman",
			VotesA: 58000, VotesB: 76000, VotesC: 21000},
		{QuestionNumber: 8, Category: "Golf", QuestionText: "Which type of shot will be most successful today?",
			OptionA: "Driving", OptionB: "Putting", OptionC: "Chipping",
			VotesA: 34000, VotesB: 89000, VotesC: 41000},
		{QuestionNumber: 9, Category: "Racing", QuestionText: "Which car manufacturer will dominate the race?",
			OptionA: "Mercedes", OptionB: "Ferrari", OptionC: "Red Bull",
			VotesA: 56000, VotesB: 43000, VotesC: 78000},
		{QuestionNumber: 10, Category: "Swimming", QuestionText: "Which stroke will have the fastest time today?",
			OptionA: "Freestyle", OptionB: "Butterfly", OptionC: "Backstroke",
			VotesA: 91000, VotesB: 32000, VotesC: 27000},
		{QuestionNumber: 11, Category: "Athletics", QuestionText: "Which event will have the closest finish?",
			OptionA: "100m Sprint", OptionB: "Marathon", OptionC: "Long Jump",
			VotesA: 64000, VotesB: 47000, VotesC: 33000},
	}
	for i := range questions {
		questions[i].ContestID = contest.ID
		if err := db.Create(&questions[i]).Error; err != nil {
			return err
		}
	}

	samples := []struct {
		name    string
		session string
		points  int
		correct int
	}{
		{"SportsMaster", "seed-sportsmaster", 500, 5},
		{"Sarah_K", "seed-sarah-k", 485, 5},
		{"Mike_99", "seed-mike-99", 465, 4},
		{"Alex_Sports", "seed-alex-sports", 440, 4},
		{"Jenny_B", "seed-jenny-b", 435, 4},
	}
	for i, s := range samples {
		rank := i + 1
		points := s.points
		correct := s.correct
		participant := models.Participant{
			ContestID:          contest.ID,
			Name:               s.name,
			SessionID:          s.session,
			TotalPoints:        &points,
			CorrectPredictions: &correct,
			Rank:               &rank,
		}
		if err := db.Create(&participant).Error; err != nil {
			return err
		}
		entry := models.LeaderboardEntry{
			ContestID:          contest.ID,
			ParticipantID:      participant.ID,
			Rank:               rank,
			Points:             points,
			CorrectPredictions: correct,
		}
		if err := db.Create(&entry).Error; err != nil {
			return err
		}
	}

	log.Printf("seeded contest %q with %d questions", contest.Name, len(questions))
	return nil
}

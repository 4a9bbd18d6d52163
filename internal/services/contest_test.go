package services

import (
	"errors"
	"testing"
	"time"

	"github.com/GeniusPlums/supreme-succotash/internal/models"
	"github.com/GeniusPlums/supreme-succotash/internal/testutil"
)

func TestGetActiveContestNone(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewContestService(db)

	if _, err := svc.GetActiveContest(); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateActiveContestDeactivatesOthers(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewContestService(db)

	input := ContestInput{
		Name:      "First",
		Prize:     "₹1,000",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
		IsActive:  true,
	}
	first, err := svc.CreateContest(input)
	if err != nil {
		t.Fatalf("CreateContest failed: %v", err)
	}

	input.Name = "Second"
	second, err := svc.CreateContest(input)
	if err != nil {
		t.Fatalf("CreateContest failed: %v", err)
	}

	active, err := svc.GetActiveContest()
	if err != nil {
		t.Fatalf("GetActiveContest failed: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("active contest = %d, want %d", active.ID, second.ID)
	}

	var reloaded models.Contest
	db.First(&reloaded, first.ID)
	if reloaded.IsActive {
		t.Error("first contest should have been deactivated")
	}
}

func TestUpdateContestActivation(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewContestService(db)

	active := testutil.CreateContest(t, db)
	inactive, err := svc.CreateContest(ContestInput{
		Name:      "Waiting",
		Prize:     "₹500",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateContest failed: %v", err)
	}

	_, err = svc.UpdateContest(inactive.ID, ContestInput{
		Name:      "Waiting",
		Prize:     "₹500",
		StartTime: inactive.StartTime,
		EndTime:   inactive.EndTime,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("UpdateContest failed: %v", err)
	}

	var old models.Contest
	db.First(&old, active.ID)
	if old.IsActive {
		t.Error("previously active contest should be deactivated")
	}
}

func TestDeleteContestCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	contest := testutil.CreateContest(t, db)
	questions := testutil.CreateQuestions(t, db, contest.ID, 2)
	testutil.SetCorrectAnswers(t, db, "A", questions[0].ID)
	testutil.CreateParticipant(t, db, contest.ID, "Gone", "s1", models.SelectionList{
		{QuestionID: questions[0].ID, SelectedOption: "A"},
	})

	scoring := NewScoringService(db)
	if err := scoring.Recalculate(contest.ID); err != nil {
		t.Fatalf("Recalculate failed: %v", err)
	}

	svc := NewContestService(db)
	if err := svc.DeleteContest(contest.ID); err != nil {
		t.Fatalf("DeleteContest failed: %v", err)
	}

	var counts [4]int64
	db.Model(&models.Contest{}).Count(&counts[0])
	db.Model(&models.Question{}).Count(&counts[1])
	db.Model(&models.Participant{}).Count(&counts[2])
	db.Model(&models.LeaderboardEntry{}).Count(&counts[3])
	for i, c := range counts {
		if c != 0 {
			t.Errorf("table %d still has %d rows after delete", i, c)
		}
	}
}

func TestDeleteContestNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewContestService(db)

	if err := svc.DeleteContest(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

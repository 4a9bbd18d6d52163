package selection

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GeniusPlums/supreme-succotash/internal/models"
)

// MaxSelections is how many questions a participant must pick.
const MaxSelections = 5

// DefaultOption is used when a question is toggled without an explicit
// option choice.
const DefaultOption = models.OptionB

var (
	ErrLimitReached  = errors.New("maximum of 5 questions already selected")
	ErrInvalidOption = errors.New("option must be A, B or C")
)

// Tracker holds an in-progress pick of at most MaxSelections questions with
// a chosen option per question. It mirrors the state the web client keeps in
// local storage between page loads.
type Tracker struct {
	order   []uint
	choices map[uint]string
}

func NewTracker() *Tracker {
	return &Tracker{choices: make(map[uint]string)}
}

// Toggle removes questionID if it is currently selected, otherwise adds it
// with the given option (DefaultOption if empty). Adding a sixth question
// fails with ErrLimitReached and leaves the tracker unchanged.
func (t *Tracker) Toggle(questionID uint, option string) error {
	if _, ok := t.choices[questionID]; ok {
		delete(t.choices, questionID)
		for i, id := range t.order {
			if id == questionID {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
		return nil
	}

	if option == "" {
		option = DefaultOption
	}
	if !models.ValidOption(option) {
		return ErrInvalidOption
	}
	if len(t.order) >= MaxSelections {
		return ErrLimitReached
	}

	t.order = append(t.order, questionID)
	t.choices[questionID] = option
	return nil
}

func (t *Tracker) Count() int {
	return len(t.order)
}

// Complete reports whether exactly MaxSelections questions are selected.
func (t *Tracker) Complete() bool {
	return len(t.order) == MaxSelections
}

// Selections returns the picked questions in selection order.
func (t *Tracker) Selections() models.SelectionList {
	out := make(models.SelectionList, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, models.Selection{QuestionID: id, SelectedOption: t.choices[id]})
	}
	return out
}

func (t *Tracker) Clear() {
	t.order = nil
	t.choices = make(map[uint]string)
}

// Snapshot serializes the tracker for client-local persistence.
func (t *Tracker) Snapshot() ([]byte, error) {
	return json.Marshal(t.Selections())
}

// Restore replaces the tracker state with a previously taken Snapshot.
func (t *Tracker) Restore(data []byte) error {
	var sels models.SelectionList
	if err := json.Unmarshal(data, &sels); err != nil {
		return err
	}
	if len(sels) > MaxSelections {
		return ErrLimitReached
	}
	restored := NewTracker()
	for _, sel := range sels {
		if err := restored.Toggle(sel.QuestionID, sel.SelectedOption); err != nil {
			return err
		}
	}
	*t = *restored
	return nil
}

// Validate checks a finalized selection list against a contest's question
// set: exactly MaxSelections entries, unique question ids all drawn from the
// set, and every option one of A/B/C. The submission handler shares this
// with the client-side tracker so the rules live in one place.
func Validate(sels models.SelectionList, questionIDs map[uint]bool) error {
	if len(sels) != MaxSelections {
		return fmt.Errorf("must select exactly %d questions, got %d", MaxSelections, len(sels))
	}

	seen := make(map[uint]bool, len(sels))
	for _, sel := range sels {
		if !models.ValidOption(sel.SelectedOption) {
			return fmt.Errorf("invalid option %q for question %d", sel.SelectedOption, sel.QuestionID)
		}
		if seen[sel.QuestionID] {
			return fmt.Errorf("question %d selected more than once", sel.QuestionID)
		}
		seen[sel.QuestionID] = true
		if !questionIDs[sel.QuestionID] {
			return fmt.Errorf("question %d does not belong to this contest", sel.QuestionID)
		}
	}
	return nil
}

package navigation

import (
	"time"

	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/session"
)

// View is the render model for a session. It never exposes the correct
// answer of a question that is still open.
type View struct {
	Page              session.Page  `json:"page"`
	ExternalAvailable bool          `json:"external_available"`
	Flashcard         FlashcardView `json:"flashcard"`
	Practice          PracticeView  `json:"practice"`
	Test              TestView      `json:"test"`
	Timed             TimedView     `json:"timed"`
}

// FlashcardView is the card under the cursor.
type FlashcardView struct {
	Position int    `json:"position"` // 1-based
	Total    int    `json:"total"`
	Term     string `json:"term"`
	Revealed bool   `json:"revealed"`

	// Definition is empty while the card is hidden.
	Definition string `json:"definition,omitempty"`
}

// QuestionView is an open question without its answer key.
type QuestionView struct {
	Prompt  string       `json:"prompt"`
	Options []OptionView `json:"options"`
}

// OptionView is one lettered answer choice.
type OptionView struct {
	Letter content.Letter `json:"letter"`
	Text   string         `json:"text"`
}

// PracticeView is the practice page.
type PracticeView struct {
	Question *QuestionView  `json:"question,omitempty"`
	Origin   session.Origin `json:"origin,omitempty"`
	Notice   string         `json:"notice,omitempty"`
}

// TestView is the unit test in whichever phase it is in.
type TestView struct {
	Phase    string        `json:"phase"`
	Position int           `json:"position"` // 1-based while in progress
	Total    int           `json:"total"`
	Score    int           `json:"score"`
	Question *QuestionView `json:"question,omitempty"`
	Result   *ResultView   `json:"result,omitempty"`
}

// ResultView is the score and review of a completed test.
type ResultView struct {
	Score   int         `json:"score"`
	Total   int         `json:"total"`
	Percent int         `json:"percent"`
	Review  []ReviewRow `json:"review"`
}

// ReviewRow is one answered test question.
type ReviewRow struct {
	Number      int            `json:"number"` // 1-based
	Prompt      string         `json:"prompt"`
	Chosen      string         `json:"chosen"`
	Correct     content.Letter `json:"correct"`
	Match       bool           `json:"match"`
	Explanation string         `json:"explanation"`
}

// TimedView is the timed quiz with its countdown.
type TimedView struct {
	Started          bool          `json:"started"`
	Expired          bool          `json:"expired"`
	RemainingSeconds int           `json:"remaining_seconds"`
	Score            int           `json:"score"`
	Answered         int           `json:"answered"`
	Question         *QuestionView `json:"question,omitempty"`
}

// VerdictView is the JSON form of a judged answer.
type VerdictView struct {
	Chosen      content.Letter `json:"chosen"`
	Correct     content.Letter `json:"correct"`
	IsCorrect   bool           `json:"is_correct"`
	Explanation string         `json:"explanation"`
}

// NewVerdictView converts v; nil stays nil.
func NewVerdictView(v *session.Verdict) *VerdictView {
	if v == nil {
		return nil
	}
	return &VerdictView{
		Chosen:      v.Chosen,
		Correct:     v.Correct,
		IsCorrect:   v.IsCorrect,
		Explanation: v.Explanation,
	}
}

// View builds the render model for st at the controller's current time.
func (c *Controller) View(st session.State) View {
	return View{
		Page:              st.Page,
		ExternalAvailable: c.source.Available(),
		Flashcard:         c.flashcardView(st.Flashcards),
		Practice:          practiceView(st.Practice),
		Test:              testView(st.Test),
		Timed:             c.timedView(st.Timed),
	}
}

// Result returns the review of a completed test in st.
func (c *Controller) Result(st session.State) (ResultView, bool) {
	res, ok := session.TestResult(st.Test)
	if !ok {
		return ResultView{}, false
	}
	return resultView(res), true
}

func (c *Controller) flashcardView(f session.FlashcardState) FlashcardView {
	v := FlashcardView{Position: f.Index + 1, Total: c.lib.Deck.Size(), Revealed: f.Revealed}
	card, err := c.lib.Deck.CardAt(f.Index)
	if err != nil {
		return v
	}
	v.Term = card.Term
	if f.Revealed {
		v.Definition = card.Definition
	}
	return v
}

func practiceView(p session.PracticeState) PracticeView {
	v := PracticeView{Notice: p.Notice}
	if p.Current != nil {
		v.Question = questionView(*p.Current)
		v.Origin = p.Origin
	}
	return v
}

func testView(t session.TestState) TestView {
	v := TestView{
		Phase: t.Phase().String(),
		Total: len(t.Questions),
		Score: t.Score,
	}
	if q, ok := t.Current(); ok {
		v.Position = t.Index + 1
		v.Question = questionView(q)
	}
	if res, ok := session.TestResult(t); ok {
		rv := resultView(res)
		v.Result = &rv
	}
	return v
}

func (c *Controller) timedView(t *session.TimedState) TimedView {
	if t == nil {
		return TimedView{}
	}
	now := c.now()
	v := TimedView{
		Started:          true,
		Expired:          t.Expired(now),
		RemainingSeconds: remainingSeconds(t, now),
		Score:            t.Score,
		Answered:         t.Answered,
	}
	if !v.Expired {
		v.Question = questionView(t.Current)
	}
	return v
}

// remainingSeconds rounds up so the display only reaches 0 on expiry.
func remainingSeconds(t *session.TimedState, now time.Time) int {
	r := t.Remaining(now)
	return int((r + time.Second - 1) / time.Second)
}

func questionView(q content.QuizItem) *QuestionView {
	v := &QuestionView{Prompt: q.Prompt, Options: make([]OptionView, content.OptionCount)}
	for i, text := range q.Options {
		l, _ := content.LetterFor(i)
		v.Options[i] = OptionView{Letter: l, Text: text}
	}
	return v
}

func resultView(res session.Result) ResultView {
	v := ResultView{
		Score:   res.Score,
		Total:   res.Total,
		Percent: res.Percent,
		Review:  make([]ReviewRow, len(res.Review)),
	}
	for i, r := range res.Review {
		v.Review[i] = ReviewRow{
			Number:      r.Index + 1,
			Prompt:      r.Prompt,
			Chosen:      r.Chosen,
			Correct:     r.Correct,
			Match:       r.Match,
			Explanation: r.Explanation,
		}
	}
	return v
}

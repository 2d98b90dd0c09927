package ranking

import (
	"sync"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		input       ScoringInput
		wantScore   int
		wantLevel   int
		wantSignals []Signal
	}{
		{
			name:        "empty input",
			input:       ScoringInput{},
			wantScore:   0,
			wantLevel:   1,
			wantSignals: []Signal{},
		},
		{
			name:        "shouted deadline title",
			input:       ScoringInput{Title: "DEADLINE"},
			wantScore:   7, // keyword 3 + deadline phrase 3 + emphasis 1
			wantLevel:   4,
			wantSignals: []Signal{SignalDeadline, SignalTitleEmphasis},
		},
		{
			name:        "mixed case deadline title has no emphasis",
			input:       ScoringInput{Title: "Deadline"},
			wantScore:   6,
			wantLevel:   3,
			wantSignals: []Signal{SignalDeadline},
		},
		{
			name:        "rupee amount",
			input:       ScoringInput{Title: "Fee update", Description: "Pay Rs. 5,000 by Friday"},
			wantScore:   2,
			wantLevel:   2,
			wantSignals: []Signal{SignalMoney},
		},
		{
			name:        "rupee sign",
			input:       ScoringInput{Title: "Stipend", Description: "₹80,000 per month"},
			wantScore:   2,
			wantLevel:   2,
			wantSignals: []Signal{SignalMoney},
		},
		{
			name:        "dollar amount",
			input:       ScoringInput{Title: "Grant", Description: "Awards of $ 1,500"},
			wantScore:   2,
			wantLevel:   2,
			wantSignals: []Signal{SignalMoney},
		},
		{
			name:        "day and month abbreviation",
			input:       ScoringInput{Title: "Library timings", Description: "Effective from 15 Mar"},
			wantScore:   2,
			wantLevel:   2,
			wantSignals: []Signal{SignalDate},
		},
		{
			name:        "numeric date",
			input:       ScoringInput{Title: "Library timings", Description: "Effective from 15/03/2024"},
			wantScore:   2,
			wantLevel:   2,
			wantSignals: []Signal{SignalDate},
		},
		{
			name:        "exclamation mark",
			input:       ScoringInput{Title: "Hello!"},
			wantScore:   1,
			wantLevel:   1,
			wantSignals: []Signal{SignalTitleEmphasis},
		},
		{
			name:        "digits only title is not emphasis",
			input:       ScoringInput{Title: "2024"},
			wantScore:   0,
			wantLevel:   1,
			wantSignals: []Signal{},
		},
		{
			name:        "substring keyword match",
			input:       ScoringInput{Title: "Please examine the paper"},
			wantScore:   3,
			wantLevel:   2,
			wantSignals: []Signal{},
		},
		{
			name:        "high priority pile up",
			input:       ScoringInput{Title: "URGENT NOTICE", Description: "Examination registration closes"},
			wantScore:   16,
			wantLevel:   5,
			wantSignals: []Signal{SignalTitleEmphasis},
		},
		{
			name:        "body is scanned",
			input:       ScoringInput{Title: "Weekly digest", Description: "Campus roundup", Body: "Sports day and a cultural night"},
			wantScore:   2,
			wantLevel:   2,
			wantSignals: []Signal{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.input)
			assert.Equal(t, tt.wantScore, got.RawScore)
			assert.Equal(t, tt.wantLevel, got.PriorityLevel)
			assert.Equal(t, tt.wantSignals, got.Signals)
		})
	}
}

func TestScore_MatchedKeywords(t *testing.T) {
	got := Score(ScoringInput{Title: "Exam results", Description: "Workshop for the sports club"})

	want := []Keyword{
		{Term: "exam", Tier: TierHigh},
		{Term: "result", Tier: TierHigh},
		{Term: "workshop", Tier: TierMedium},
		{Term: "sports", Tier: TierLow},
		{Term: "club", Tier: TierLow},
	}
	assert.Equal(t, want, got.MatchedKeywords)
	assert.Equal(t, 3+3+2+1+1, got.RawScore)
	assert.Equal(t, 5, got.PriorityLevel)
}

func TestComputePriority(t *testing.T) {
	assert.Equal(t, 1, ComputePriority("", "", ""))
	assert.Equal(t, 4, ComputePriority("DEADLINE", "", ""))
	assert.Equal(t, 2, ComputePriority("Fee update", "Pay Rs. 5,000 by Friday", ""))
	assert.Equal(t, 5, ComputePriority(
		"End Semester Examination Schedule Released",
		"The examination department has released the schedule for end semester examinations starting from March 15, 2024.",
		"Result declaration: April 20, 2024. Last date for queries is 10/03/2024.",
	))
}

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{6, 3},
		{7, 4},
		{9, 4},
		{10, 5},
		{100, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %d", tt.score)
	}
}

func TestComputePriority_Properties(t *testing.T) {
	inRange := func(title, description, body string) bool {
		level := ComputePriority(title, description, body)
		return level >= MinPriority && level <= MaxPriority
	}
	require.NoError(t, quick.Check(inRange, nil))

	idempotent := func(title, description, body string) bool {
		return ComputePriority(title, description, body) == ComputePriority(title, description, body)
	}
	require.NoError(t, quick.Check(idempotent, nil))

	monotonic := func(title, description, body string) bool {
		before := ComputePriority(title, description, body)
		after := ComputePriority(title, description, body+" urgent emergency")
		return after >= before
	}
	require.NoError(t, quick.Check(monotonic, nil))

	consistent := func(title, description, body string) bool {
		result := Score(ScoringInput{Title: title, Description: description, Body: body})
		return result.RawScore >= 0 && result.PriorityLevel == LevelForScore(result.RawScore)
	}
	require.NoError(t, quick.Check(consistent, nil))
}

func TestScore_Concurrent(t *testing.T) {
	input := ScoringInput{Title: "URGENT: Placement drive", Description: "Last date 12/04/2024", Body: "Stipend Rs 40,000"}
	want := Score(input)

	var wg sync.WaitGroup
	results := make([]ScoreResult, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Score(input)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestKeywordAccessorsReturnCopies(t *testing.T) {
	high := HighPriorityKeywords()
	require.Len(t, high, 17)
	high[0] = "mutated"
	assert.Equal(t, "urgent", HighPriorityKeywords()[0])

	assert.Len(t, MediumPriorityKeywords(), 11)
	assert.Len(t, LowPriorityKeywords(), 9)
	assert.Len(t, PriorityKeywords(), 17+11+9)
}

func FuzzScore(f *testing.F) {
	f.Add("DEADLINE", "", "")
	f.Add("Fee update", "Pay Rs. 5,000 by Friday", "")
	f.Add("", "", "")
	f.Add("Holi Festival Holiday - March 25, 2024", "closed on 25 mar", "₹")

	f.Fuzz(func(t *testing.T, title, description, body string) {
		result := Score(ScoringInput{Title: title, Description: description, Body: body})
		if result.PriorityLevel < MinPriority || result.PriorityLevel > MaxPriority {
			t.Fatalf("priority %d out of range", result.PriorityLevel)
		}
		if result.PriorityLevel != LevelForScore(result.RawScore) {
			t.Fatalf("priority %d does not match raw score %d", result.PriorityLevel, result.RawScore)
		}
	})
}

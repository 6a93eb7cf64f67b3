package textpipe

import (
	"errors"
	"testing"
)

func TestSentimentPolarity(t *testing.T) {
	tests := []struct {
		text     string
		positive bool
		desc     string
	}{
		{"This product is good.", true, "positive word"},
		{"This product is terrible.", false, "negative word"},
		{"The food was delicious and the service excellent.", true, "multiple positives"},
		{"An awful, boring and disappointing evening.", false, "multiple negatives"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			doc := NewDoc(tt.text, WithLanguage("en"))
			got, err := doc.Sentiment()
			if err != nil {
				t.Fatalf("Sentiment() error: %v", err)
			}
			if tt.positive && got.Polarity <= 0 {
				t.Errorf("polarity = %.2f, want > 0 for %q", got.Polarity, tt.text)
			}
			if !tt.positive && got.Polarity >= 0 {
				t.Errorf("polarity = %.2f, want < 0 for %q", got.Polarity, tt.text)
			}
		})
	}
}

func TestSentimentNegation(t *testing.T) {
	plain := NewDoc("This is good.", WithLanguage("en"))
	negated := NewDoc("This is not good.", WithLanguage("en"))

	plainScore, err := plain.Sentiment()
	if err != nil {
		t.Fatalf("Sentiment() error: %v", err)
	}
	negatedScore, err := negated.Sentiment()
	if err != nil {
		t.Fatalf("Sentiment() error: %v", err)
	}

	if plainScore.Polarity <= 0 {
		t.Fatalf("baseline polarity = %.2f, want > 0", plainScore.Polarity)
	}
	if negatedScore.Polarity >= 0 {
		t.Errorf("negated polarity = %.2f, want < 0", negatedScore.Polarity)
	}
}

func TestSentimentModifiers(t *testing.T) {
	base := NewDoc("This is good.", WithLanguage("en"))
	intensified := NewDoc("This is very good.", WithLanguage("en"))
	diminished := NewDoc("This is slightly good.", WithLanguage("en"))

	baseScore, _ := base.Sentiment()
	strongScore, _ := intensified.Sentiment()
	weakScore, _ := diminished.Sentiment()

	if strongScore.Polarity <= baseScore.Polarity {
		t.Errorf("intensified polarity %.2f <= base %.2f",
			strongScore.Polarity, baseScore.Polarity)
	}
	if weakScore.Polarity >= baseScore.Polarity {
		t.Errorf("diminished polarity %.2f >= base %.2f",
			weakScore.Polarity, baseScore.Polarity)
	}
}

func TestSentimentSubjectivity(t *testing.T) {
	doc := NewDoc("This is a nice and lovely evening.", WithLanguage("en"))
	got, err := doc.Sentiment()
	if err != nil {
		t.Fatalf("Sentiment() error: %v", err)
	}
	if got.Subjectivity <= 0.5 {
		t.Errorf("subjectivity = %.2f, want > 0.5 for opinionated text", got.Subjectivity)
	}
}

func TestSentimentOtherLanguages(t *testing.T) {
	tests := []struct {
		lang     string
		text     string
		positive bool
	}{
		{"nl", "Dit is een leuke zin.", true},
		{"nl", "Wat een waardeloos en vervelend boek.", false},
		{"fr", "Un film magnifique et agréable.", true},
		{"it", "Un ristorante pessimo e noioso.", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			doc := NewDoc(tt.text, WithLanguage(tt.lang))
			got, err := doc.Sentiment()
			if err != nil {
				t.Fatalf("Sentiment() error: %v", err)
			}
			if tt.positive && got.Polarity <= 0 {
				t.Errorf("polarity = %.2f, want > 0 for %q", got.Polarity, tt.text)
			}
			if !tt.positive && got.Polarity >= 0 {
				t.Errorf("polarity = %.2f, want < 0 for %q", got.Polarity, tt.text)
			}
		})
	}
}

func TestSentimentMissingLexicon(t *testing.T) {
	doc := NewDoc("Das ist ein Satz.", WithLanguage("de"))
	if _, err := doc.Sentiment(); !errors.Is(err, ErrMissingModel) {
		t.Errorf("Sentiment() error = %v, want ErrMissingModel", err)
	}
}

func TestSentimentNeutralText(t *testing.T) {
	doc := NewDoc("The train departs at seven.", WithLanguage("en"))
	got, err := doc.Sentiment()
	if err != nil {
		t.Fatalf("Sentiment() error: %v", err)
	}
	if got.Polarity != 0 || got.Subjectivity != 0 {
		t.Errorf("neutral text scored %+v, want zero scores", got)
	}
}

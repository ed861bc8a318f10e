package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neptun2000/email-validator/internal/score"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		name string
		s    score.Signals
		want int
	}{
		{"nothing", score.Signals{}, 0},
		{"format only", score.Signals{FormatValid: true}, 25},
		{"format and mx", score.Signals{FormatValid: true, MXFound: true}, 50},
		{"format mx smtp", score.Signals{FormatValid: true, MXFound: true, SMTPAccepted: true}, 80},
		{"all signals", score.Signals{
			FormatValid: true, MXFound: true, SMTPAccepted: true,
			KnownCategory: true, DMARCPresent: true,
		}, 100},
		{"known category without smtp", score.Signals{
			FormatValid: true, MXFound: true, KnownCategory: true,
		}, 60},
		{"dmarc alone", score.Signals{DMARCPresent: true}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, score.Confidence(tt.s))
		})
	}
}

func TestConfidence_Deterministic(t *testing.T) {
	s := score.Signals{FormatValid: true, MXFound: true, DMARCPresent: true}
	first := score.Confidence(s)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, score.Confidence(s))
	}
}

package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boardvote/board-voting-api/internal/models"
)

func TestCountVotes(t *testing.T) {
	votes := []models.Vote{
		{Choice: models.VoteYes},
		{Choice: models.VoteYes},
		{Choice: models.VoteNo},
		{Choice: models.VoteAbstain},
		{Choice: models.VoteYes},
	}

	tally := CountVotes(votes)

	require.Equal(t, 3, tally.Yes)
	require.Equal(t, 1, tally.No)
	require.Equal(t, 1, tally.Abstain)
}

func TestTallyDecision(t *testing.T) {
	tests := []struct {
		name  string
		tally Tally
		want  string
	}{
		{"yes majority accepted", Tally{Yes: 3, No: 1}, DecisionAccepted},
		{"tie not accepted", Tally{Yes: 1, No: 1}, DecisionNotAccepted},
		{"no majority not accepted", Tally{Yes: 1, No: 2}, DecisionNotAccepted},
		{"abstain majority not accepted", Tally{Yes: 1, No: 1, Abstain: 5}, DecisionNotAccepted},
		{"no votes not accepted", Tally{}, DecisionNotAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.tally.Decision())
		})
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestState_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    RequestState
		to      RequestState
		allowed bool
	}{
		{"en-cours to confirme", RequestStateEnCours, RequestStateConfirme, true},
		{"en-cours to rejete", RequestStateEnCours, RequestStateRejete, true},
		{"en-cours to termine skips confirme", RequestStateEnCours, RequestStateTermine, false},
		{"confirme to termine", RequestStateConfirme, RequestStateTermine, true},
		{"confirme to rejete", RequestStateConfirme, RequestStateRejete, true},
		{"confirme back to en-cours", RequestStateConfirme, RequestStateEnCours, false},
		{"termine is final", RequestStateTermine, RequestStateRejete, false},
		{"rejete is final", RequestStateRejete, RequestStateConfirme, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"american beech", "American Beech"},
		{"AMERICAN BEECH", "American Beech"},
		{"American Beech", "American Beech"},
		{"london planetree", "London Planetree"},
		{"ginkgo", "Ginkgo"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCase(tt.in))
		})
	}
}

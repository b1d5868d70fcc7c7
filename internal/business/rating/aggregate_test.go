package rating

import (
	"testing"

	"github.com/you-rent/api/pkg/model"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name     string
		comments []model.Comment
		want     float64
	}{
		{
			name: "all scored",
			comments: []model.Comment{
				{Score: 4}, {Score: 2},
			},
			want: 3,
		},
		{
			name: "unscored comments count in the divisor",
			comments: []model.Comment{
				{Score: 4}, {Score: 2}, {Message: "owner reply"},
			},
			want: 2, // (4+2)/3, not (4+2)/2
		},
		{
			name:     "empty list",
			comments: nil,
			want:     0,
		},
		{
			name: "only unscored comments",
			comments: []model.Comment{
				{Message: "a"}, {Message: "b"},
			},
			want: 0,
		},
		{
			name:     "single five star",
			comments: []model.Comment{{Score: 5}},
			want:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Average(tt.comments)
			if got != tt.want {
				t.Errorf("Average = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 5 {
				t.Errorf("Average = %v, outside [0,5]", got)
			}
		})
	}
}

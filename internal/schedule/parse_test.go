package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "momentum/internal/errors"
)

func TestParseOrdinalPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    OrdinalWeekdayPattern
	}{
		{
			name:    "first_monday_current_month",
			pattern: "0/1/1",
			want:    OrdinalWeekdayPattern{MonthOffset: 0, Weekday: Monday, Ordinal: First},
		},
		{
			name:    "last_friday_previous_month",
			pattern: "-1/5/L",
			want:    OrdinalWeekdayPattern{MonthOffset: -1, Weekday: Friday, Ordinal: Last},
		},
		{
			name:    "second_wednesday_two_months_back",
			pattern: "-2/3/2",
			want:    OrdinalWeekdayPattern{MonthOffset: -2, Weekday: Wednesday, Ordinal: Second},
		},
		{
			name:    "third_thursday_next_month",
			pattern: "1/4/3",
			want:    OrdinalWeekdayPattern{MonthOffset: 1, Weekday: Thursday, Ordinal: Third},
		},
		{
			name:    "large_positive_offset",
			pattern: "36/2/1",
			want:    OrdinalWeekdayPattern{MonthOffset: 36, Weekday: Tuesday, Ordinal: First},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrdinalPattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrdinalPatternErrors(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		wantType apperrors.ErrorType
	}{
		{name: "too_few_fields", pattern: "0/1", wantType: apperrors.ErrTypeFormat},
		{name: "too_many_fields", pattern: "0/1/1/1", wantType: apperrors.ErrTypeFormat},
		{name: "empty_string", pattern: "", wantType: apperrors.ErrTypeFormat},
		{name: "offset_not_integer", pattern: "abc/1/1", wantType: apperrors.ErrTypeParsing},
		{name: "offset_float", pattern: "1.5/1/1", wantType: apperrors.ErrTypeParsing},
		{name: "weekday_not_integer", pattern: "0/mon/1", wantType: apperrors.ErrTypeParsing},
		{name: "weekday_zero", pattern: "0/0/1", wantType: apperrors.ErrTypeValidation},
		{name: "weekday_saturday", pattern: "0/6/1", wantType: apperrors.ErrTypeValidation},
		{name: "weekday_negative", pattern: "0/-1/1", wantType: apperrors.ErrTypeValidation},
		{name: "ordinal_fourth", pattern: "0/1/4", wantType: apperrors.ErrTypeValidation},
		{name: "ordinal_lowercase_l", pattern: "0/1/l", wantType: apperrors.ErrTypeValidation},
		{name: "ordinal_empty", pattern: "0/1/", wantType: apperrors.ErrTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOrdinalPattern(tt.pattern)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType),
				"want error type %s, got %s (%v)", tt.wantType, apperrors.TypeOf(err), err)
		})
	}
}

func TestParseEdgePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    MonthEdgePattern
	}{
		{name: "previous_month_first", pattern: "-1F", want: MonthEdgePattern{MonthOffset: -1, Edge: EdgeFirst}},
		{name: "current_month_last", pattern: "0L", want: MonthEdgePattern{MonthOffset: 0, Edge: EdgeLast}},
		{name: "next_month_last", pattern: "1L", want: MonthEdgePattern{MonthOffset: 1, Edge: EdgeLast}},
		{name: "explicit_plus_sign", pattern: "+2F", want: MonthEdgePattern{MonthOffset: 2, Edge: EdgeFirst}},
		{name: "three_months_back", pattern: "-3L", want: MonthEdgePattern{MonthOffset: -3, Edge: EdgeLast}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEdgePattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEdgePatternErrors(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		wantType apperrors.ErrorType
	}{
		{name: "empty_string", pattern: "", wantType: apperrors.ErrTypeFormat},
		{name: "missing_suffix", pattern: "-1", wantType: apperrors.ErrTypeFormat},
		{name: "unknown_suffix", pattern: "0X", wantType: apperrors.ErrTypeFormat},
		{name: "lowercase_suffix", pattern: "0f", wantType: apperrors.ErrTypeFormat},
		{name: "offset_not_integer", pattern: "xF", wantType: apperrors.ErrTypeParsing},
		{name: "suffix_only", pattern: "L", wantType: apperrors.ErrTypeParsing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEdgePattern(tt.pattern)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType),
				"want error type %s, got %s (%v)", tt.wantType, apperrors.TypeOf(err), err)
		})
	}
}

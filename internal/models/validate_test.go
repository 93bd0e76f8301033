package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNormalizeMessageBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{name: "plain text", body: "hello", want: "hello"},
		{name: "surrounding whitespace trimmed", body: "  hi there \n", want: "hi there"},
		{name: "empty", body: "", wantErr: ErrEmptyBody},
		{name: "whitespace only", body: " \t\n ", wantErr: ErrEmptyBody},
		{name: "exactly max length", body: strings.Repeat("a", MaxMessageLength), want: strings.Repeat("a", MaxMessageLength)},
		{name: "one over max", body: strings.Repeat("a", MaxMessageLength+1), wantErr: ErrBodyTooLong},
		{name: "max length after trim", body: "  " + strings.Repeat("a", MaxMessageLength) + "  ", want: strings.Repeat("a", MaxMessageLength)},
		{name: "multibyte runes counted as characters", body: strings.Repeat("я", MaxMessageLength), want: strings.Repeat("я", MaxMessageLength)},
		{name: "multibyte one over", body: strings.Repeat("я", MaxMessageLength+1), wantErr: ErrBodyTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMessageBody(tt.body)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReadBySet(t *testing.T) {
	a := uuid.MustParse("11111111-1111-4111-8111-111111111111")
	b := uuid.MustParse("22222222-2222-4222-8222-222222222222")

	set := ReadBySet{a}
	if !set.Contains(a) || set.Contains(b) {
		t.Fatal("contains mismatch")
	}

	set = set.Add(b)
	if len(set) != 2 || !set.Contains(b) {
		t.Fatalf("expected {a b}, got %v", set)
	}

	set = set.Add(b)
	if len(set) != 2 {
		t.Fatalf("add must be idempotent, got %v", set)
	}
}

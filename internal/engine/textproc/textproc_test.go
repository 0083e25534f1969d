package textproc

import (
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits",
			text: "Black Leather Wallet",
			want: []string{"black", "leather", "wallet"},
		},
		{
			name: "collapses whitespace",
			text: "  red\tumbrella \n near gate ",
			want: []string{"red", "umbrella", "near", "gate"},
		},
		{
			name: "strips accents",
			text: "café résumé",
			want: []string{"cafe", "resume"},
		},
		{
			name: "keeps stop words",
			text: "the keys in the bag",
			want: []string{"the", "keys", "in", "the", "bag"},
		},
		{
			name: "empty string",
			text: "",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokens(tc.text)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokens(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops stop words",
			text: "the keys in the bag with a charger",
			want: []string{"keys", "bag", "charger"},
		},
		{
			name: "all stop words",
			text: "of and the a an",
			want: nil,
		},
		{
			name: "case-insensitive stop words",
			text: "The Wallet",
			want: []string{"wallet"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Keywords(tc.text)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Keywords(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

package slug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and joins", "Blue Widget", "blue-widget"},
		{"collapses punctuation runs", "Blue  Widget!!", "blue-widget"},
		{"strips diacritics", "Crème Brûlée", "creme-brulee"},
		{"trims edge separators", "--Hello World--", "hello-world"},
		{"keeps digits", "Pack of 12", "pack-of-12"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestMakeCollidesOnDiacritics(t *testing.T) {
	t.Parallel()

	require.Equal(t, Make("Café Noir"), Make("Cafe Noir"))
}

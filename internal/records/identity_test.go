package records

import "testing"

func TestNormCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Madden", "madden"},
		{"madden", "madden"},
		{"M a d d e n", "madden"},
		{"  Rocket  League  ", "rocketleague"},
		{"FIFA\t24", "fifa24"},
		{"", ""},
	}

	for _, c := range cases {
		if got := NormCode(c.in); got != c.want {
			t.Errorf("NormCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTitleName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"madden", "Madden"},
		{"rocket league", "Rocket League"},
		{"  rocket league  ", "Rocket League"},
		{"MADDEN", "Madden"},
	}

	for _, c := range cases {
		if got := TitleName(c.in); got != c.want {
			t.Errorf("TitleName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

package annex1

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "already canonical",
			code: "0110010",
			want: "0110010",
		},
		{
			name: "excel stripped leading zero",
			code: "110010",
			want: "0110010",
		},
		{
			name: "single digit",
			code: "1",
			want: "0000001",
		},
		{
			name: "longer than seven digits unchanged",
			code: "01100100",
			want: "01100100",
		},
		{
			name: "non-numeric unchanged",
			code: "P 0110010",
			want: "P 0110010",
		},
		{
			name: "empty unchanged",
			code: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.code)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		want   int
		wantOK bool
	}{
		{
			name:   "major group ends in three zeros",
			code:   "0110000",
			want:   1,
			wantOK: true,
		},
		{
			name:   "three trailing zeros always level 1",
			code:   "0251000", // a taxonomy subgroup, but the code pattern cannot tell
			want:   1,
			wantOK: true,
		},
		{
			name:   "two trailing zeros",
			code:   "0110100",
			want:   2,
			wantOK: true,
		},
		{
			name:   "individual commodity",
			code:   "0110010",
			want:   3,
			wantOK: true,
		},
		{
			name:   "one trailing zero is individual",
			code:   "0152030",
			want:   3,
			wantOK: true,
		},
		{
			name:   "six digits has no level",
			code:   "110000",
			wantOK: false,
		},
		{
			name:   "eight digits has no level",
			code:   "01100000",
			wantOK: false,
		},
		{
			name:   "non-numeric has no level",
			code:   "011000X",
			wantOK: false,
		},
		{
			name:   "empty has no level",
			code:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Level(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("Level(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Level(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestParentCode(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		want   string
		wantOK bool
	}{
		{
			name:   "major group has no parent",
			code:   "0110000",
			wantOK: false,
		},
		{
			name:   "subgroup rolls up to major group",
			code:   "0110100",
			want:   "0110000",
			wantOK: true,
		},
		{
			name:   "commodity under a subgroup",
			code:   "0251010",
			want:   "0251000",
			wantOK: true,
		},
		{
			name:   "commodity straight under a group",
			code:   "0110010",
			want:   "0110000",
			wantOK: true,
		},
		{
			name:   "non-canonical has no parent",
			code:   "110010",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParentCode(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("ParentCode(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParentCode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestParentCodeIsCanonical(t *testing.T) {
	// Every derived parent must itself be a 7-digit code.
	codes := []string{"0110010", "0110100", "0251010", "0163020", "0500010"}
	for _, code := range codes {
		parent, ok := ParentCode(code)
		if !ok {
			t.Fatalf("ParentCode(%q) unexpectedly has no parent", code)
		}
		if len(parent) != 7 {
			t.Errorf("ParentCode(%q) = %q, not 7 digits", code, parent)
		}
	}
}

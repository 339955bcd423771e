package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveTargets(t *testing.T) {
	tests := []struct {
		name    string
		theme   string
		harmony string
		want    []RGB
		wantErr error
	}{
		{
			name:    "harmony from base colour",
			theme:   "#FF0000",
			harmony: "complementary",
			want:    []RGB{{R: 255}, {G: 255, B: 255}},
		},
		{
			name:  "custom list",
			theme: "#ff0000, 00ff00 ,#0000FF",
			want:  []RGB{{R: 255}, {G: 255}, {B: 255}},
		},
		{
			name:  "single hex without harmony",
			theme: "#123456",
			want:  []RGB{{R: 0x12, G: 0x34, B: 0x56}},
		},
		{
			name:    "harmony with invalid base",
			theme:   "ocean",
			harmony: "triadic",
			wantErr: ErrInvalidBaseColor,
		},
		{
			name:    "harmony with unknown rule",
			theme:   "#ff0000",
			harmony: "tetradic",
			wantErr: ErrUnknownHarmonyRule,
		},
		{
			name:    "custom list with bad segment",
			theme:   "#ff0000,notacolour",
			wantErr: ErrInvalidCustomPalette,
		},
		{
			name:    "unknown theme",
			theme:   "not-a-theme",
			wantErr: ErrUnknownTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTargets(tt.theme, tt.harmony)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d targets, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("target %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveTargetsBuiltinCaseInsensitive(t *testing.T) {
	want, ok := Theme("ocean")
	if !ok {
		t.Fatal("ocean theme missing")
	}
	got, err := ResolveTargets("OCEAN", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("ResolveTargets(OCEAN) = %v, want %v", got, want)
	}
}

func TestBuiltinThemesAreWellFormed(t *testing.T) {
	names := ThemeNames()
	if len(names) == 0 {
		t.Fatal("no built-in themes")
	}
	for _, name := range names {
		targets, _ := Theme(name)
		if len(targets) < 3 || len(targets) > 6 {
			t.Errorf("theme %q has %d colours, want 3-6", name, len(targets))
		}
	}
}

func TestBuildPaletteUnknownThemeListsNames(t *testing.T) {
	_, err := BuildPalette[testSwatch]("not-a-theme", 5, "", nil)

	var themeErr *UnknownThemeError
	if !errors.As(err, &themeErr) {
		t.Fatalf("error = %v, want *UnknownThemeError", err)
	}
	for _, name := range ThemeNames() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error message %q does not list theme %q", err.Error(), name)
		}
	}
}

func TestBuildPaletteHarmonySkipsMissingTargets(t *testing.T) {
	catalog := []testSwatch{{id: "a", rgb: RGB{R: 255}}}

	got, err := BuildPalette("#FF0000", 2, "complementary", catalog)
	if err != nil {
		t.Fatalf("BuildPalette() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Item.id != "a" || got[0].Distance != 0 {
		t.Errorf("palette[0] = %+v, want a at distance 0", got[0])
	}
}

func TestBuildPaletteDeduplicates(t *testing.T) {
	catalog := []testSwatch{
		{id: "red", rgb: RGB{R: 255}},
		{id: "blue", rgb: RGB{B: 255}},
	}

	got, err := BuildPalette("#ff0000,#fe0000", 2, "", catalog)
	if err != nil {
		t.Fatalf("BuildPalette() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Item.id != "red" || got[1].Item.id != "blue" {
		t.Errorf("palette = [%s %s], want [red blue]", got[0].Item.id, got[1].Item.id)
	}
}

func TestBuildPaletteSize(t *testing.T) {
	catalog := []testSwatch{
		{id: "r", rgb: RGB{R: 255}},
		{id: "g", rgb: RGB{G: 255}},
		{id: "b", rgb: RGB{B: 255}},
	}

	got, err := BuildPalette("#ff0000,#00ff00,#0000ff", 2, "", catalog)
	if err != nil {
		t.Fatalf("BuildPalette() error: %v", err)
	}
	if len(got) != 2 || got[0].Item.id != "r" || got[1].Item.id != "g" {
		t.Errorf("palette = %+v, want r then g", got)
	}

	got, err = BuildPalette("#ff0000", 4, "", catalog)
	if err != nil {
		t.Fatalf("BuildPalette() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1 when fewer targets than size", len(got))
	}

	if _, err := BuildPalette("ocean", 0, "", catalog); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("size 0 error = %v, want ErrInvalidArgument", err)
	}
}

func TestBuildPaletteDoesNotMutateCatalog(t *testing.T) {
	catalog := []testSwatch{
		{id: "b", rgb: RGB{B: 255}},
		{id: "r", rgb: RGB{R: 255}},
	}
	if _, err := BuildPalette("#ff0000,#0000ff", 2, "", catalog); err != nil {
		t.Fatalf("BuildPalette() error: %v", err)
	}
	if catalog[0].id != "b" || catalog[1].id != "r" {
		t.Errorf("catalog reordered: %+v", catalog)
	}
}

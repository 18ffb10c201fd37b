package sponsorblock

import (
	"errors"
	"testing"
)

func TestSegmentKindFromAPI(t *testing.T) {
	tests := []struct {
		category string
		want     ActionableSegmentKind
	}{
		{"sponsor", KindSponsor},
		{"selfpromo", KindUnpaidSelfPromotion},
		{"interaction", KindInteractionReminder},
		{"poi_highlight", KindHighlight},
		{"intro", KindIntermissionIntroAnimation},
		{"outro", KindEndcardsCredits},
		{"preview", KindPreviewRecap},
		{"music_offtopic", KindNonMusic},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got, err := segmentKindFromAPI(tt.category)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("segmentKindFromAPI(%q) = %s, want %s", tt.category, got, tt.want)
			}
			// The mapping round-trips through the kind's Category
			if got.Category() != Category(tt.category) {
				t.Errorf("kind %s maps back to %q, want %q", got, got.Category(), tt.category)
			}
		})
	}
}

func TestSegmentKindFromAPIUnknown(t *testing.T) {
	for _, category := range []string{"", "Sponsor", "chapter", "filler"} {
		_, err := segmentKindFromAPI(category)
		var badData *BadDataError
		if !errors.As(err, &badData) {
			t.Errorf("segmentKindFromAPI(%q): expected BadDataError, got %v", category, err)
		}
	}
}

func TestActionTypeFromAPI(t *testing.T) {
	tests := []struct {
		name string
		want ActionType
	}{
		{"skip", ActionTypeSkip},
		{"mute", ActionTypeMute},
		{"full", ActionTypeFullVideo},
		{"poi", ActionTypePoi},
		{"chapter", ActionTypeChapter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := actionTypeFromAPI(tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("actionTypeFromAPI(%q) = %s, want %s", tt.name, got, tt.want)
			}
			if got.String() != tt.name {
				t.Errorf("ActionType.String() = %q, want %q", got.String(), tt.name)
			}
		})
	}
}

func TestActionTypeFromAPIUnknown(t *testing.T) {
	for _, name := range []string{"", "SKIP", "fast-forward"} {
		_, err := actionTypeFromAPI(name)
		var badData *BadDataError
		if !errors.As(err, &badData) {
			t.Errorf("actionTypeFromAPI(%q): expected BadDataError, got %v", name, err)
		}
	}
}

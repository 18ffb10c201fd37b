package sponsorblock

import (
	"reflect"
	"testing"
)

func TestAcceptedCategoriesGenURLValue(t *testing.T) {
	empty := AcceptedCategories{}
	if got := empty.GenURLValue(); got != `[]` {
		t.Errorf("empty set: got %q, want []", got)
	}

	set := AcceptedCategories{}.
		Accept(CategorySponsor).
		Accept(CategoryHighlight)
	if got := set.GenURLValue(); got != `["sponsor","poi_highlight"]` {
		t.Errorf("got %q", got)
	}
}

func TestAcceptedCategoriesDeduplicates(t *testing.T) {
	set := AcceptedCategories{}.
		Accept(CategorySponsor).
		Accept(CategorySponsor)
	if got := set.Categories(); len(got) != 1 {
		t.Errorf("expected 1 category after duplicate Accept, got %v", got)
	}
}

func TestAcceptedCategoriesImmutable(t *testing.T) {
	base := AcceptedCategories{}.Accept(CategorySponsor)
	extended := base.Accept(CategoryIntermissionIntro)

	if len(base.Categories()) != 1 {
		t.Errorf("Accept must not mutate the receiver, base now has %v", base.Categories())
	}
	if len(extended.Categories()) != 2 {
		t.Errorf("expected 2 categories, got %v", extended.Categories())
	}
}

func TestAcceptAll(t *testing.T) {
	all := AcceptAll()
	if !reflect.DeepEqual(all.Categories(), AllCategories) {
		t.Errorf("AcceptAll() = %v, want %v", all.Categories(), AllCategories)
	}
}

func TestToURLArray(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"nil", nil, `[]`},
		{"empty", []string{}, `[]`},
		{"single", []string{"sponsor"}, `["sponsor"]`},
		{"multiple", []string{"a", "b"}, `["a","b"]`},
		{"quoting", []string{`he said "hi"`}, `["he said \"hi\""]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toURLArray(tt.values); got != tt.want {
				t.Errorf("toURLArray(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestSegmentKindStrings(t *testing.T) {
	// Every kind has a printable name and a wire category.
	for _, kind := range []ActionableSegmentKind{
		KindSponsor,
		KindUnpaidSelfPromotion,
		KindInteractionReminder,
		KindHighlight,
		KindIntermissionIntroAnimation,
		KindEndcardsCredits,
		KindPreviewRecap,
		KindNonMusic,
	} {
		if kind.String() == "unknown" {
			t.Errorf("kind %d has no name", kind)
		}
		if kind.Category() == "" {
			t.Errorf("kind %s has no category", kind)
		}
	}
}

func TestNormalizeSegmentVariants(t *testing.T) {
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
			segment, err := normalizeSegment(rawSegment{
				Category:   tt.category,
				ActionType: "skip",
				Segment:    [2]float32{10, 20},
				UUID:       "u",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if segment.Kind() != tt.want {
				t.Errorf("got kind %s, want %s", segment.Kind(), tt.want)
			}

			if tt.want == KindHighlight {
				highlight := segment.ActionableSegment.(Highlight)
				if highlight.Point != (TimePoint{Point: 10}) {
					t.Errorf("unexpected point: %+v", highlight.Point)
				}
				return
			}

			// All section kinds carry the full range; check through the
			// closed set of variants.
			var section TimeSection
			switch v := segment.ActionableSegment.(type) {
			case Sponsor:
				section = v.Section
			case UnpaidSelfPromotion:
				section = v.Section
			case InteractionReminder:
				section = v.Section
			case IntermissionIntroAnimation:
				section = v.Section
			case EndcardsCredits:
				section = v.Section
			case PreviewRecap:
				section = v.Section
			case NonMusic:
				section = v.Section
			default:
				t.Fatalf("unexpected variant %T", segment.ActionableSegment)
			}
			if section != (TimeSection{Start: 10, End: 20}) {
				t.Errorf("unexpected section: %+v", section)
			}
		})
	}
}

func TestNormalizeSegmentZeroLengthSection(t *testing.T) {
	// start == end is a valid (degenerate) section.
	segment, err := normalizeSegment(rawSegment{
		Category:   "sponsor",
		ActionType: "skip",
		Segment:    [2]float32{30, 30},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sponsor := segment.ActionableSegment.(Sponsor)
	if sponsor.Section != (TimeSection{Start: 30, End: 30}) {
		t.Errorf("unexpected section: %+v", sponsor.Section)
	}
}

package sponsorblock

// Category identifies a segment category as the API names it.
type Category string

// Categories recognized by the API.
const (
	CategorySponsor             Category = "sponsor"
	CategoryUnpaidSelfPromotion Category = "selfpromo"
	CategoryInteractionReminder Category = "interaction"
	CategoryHighlight           Category = "poi_highlight"
	CategoryIntermissionIntro   Category = "intro"
	CategoryEndcardsCredits     Category = "outro"
	CategoryPreviewRecap        Category = "preview"
	CategoryNonMusic            Category = "music_offtopic"
)

// AllCategories lists every category the API recognizes.
var AllCategories = []Category{
	CategorySponsor,
	CategoryUnpaidSelfPromotion,
	CategoryInteractionReminder,
	CategoryHighlight,
	CategoryIntermissionIntro,
	CategoryEndcardsCredits,
	CategoryPreviewRecap,
	CategoryNonMusic,
}

// AcceptedCategories is the set of categories a caller wants returned from a
// segment lookup. The zero value accepts nothing; build one with Accept or
// AcceptAll. Duplicates are harmless but not stored twice.
type AcceptedCategories struct {
	categories []Category
}

// AcceptAll returns a set accepting every known category.
func AcceptAll() AcceptedCategories {
	return AcceptedCategories{categories: append([]Category(nil), AllCategories...)}
}

// Accept returns a copy of the set with the given category included.
func (a AcceptedCategories) Accept(c Category) AcceptedCategories {
	for _, existing := range a.categories {
		if existing == c {
			return a
		}
	}
	out := AcceptedCategories{categories: append([]Category(nil), a.categories...)}
	out.categories = append(out.categories, c)
	return out
}

// Categories returns the accepted categories in insertion order.
func (a AcceptedCategories) Categories() []Category {
	return append([]Category(nil), a.categories...)
}

// GenURLValue serializes the set into the single query-parameter value the
// API expects.
func (a AcceptedCategories) GenURLValue() string {
	values := make([]string, len(a.categories))
	for i, c := range a.categories {
		values[i] = string(c)
	}
	return toURLArray(values)
}

// ActionType describes what a player is expected to do with a segment.
type ActionType uint8

// Action types recognized by the API.
const (
	ActionTypeSkip ActionType = iota
	ActionTypeMute
	ActionTypeFullVideo
	ActionTypePoi
	ActionTypeChapter
)

// String returns the API's name for the action type.
func (t ActionType) String() string {
	switch t {
	case ActionTypeSkip:
		return "skip"
	case ActionTypeMute:
		return "mute"
	case ActionTypeFullVideo:
		return "full"
	case ActionTypePoi:
		return "poi"
	case ActionTypeChapter:
		return "chapter"
	}
	return "unknown"
}

// TimeSection is a [start, end] range within a video, in seconds.
type TimeSection struct {
	Start float32 `json:"start"`
	End   float32 `json:"end"`
}

// TimePoint is a single instant within a video, in seconds.
type TimePoint struct {
	Point float32 `json:"point"`
}

// ActionableSegmentKind enumerates the closed set of segment kinds.
type ActionableSegmentKind uint8

const (
	KindSponsor ActionableSegmentKind = iota
	KindUnpaidSelfPromotion
	KindInteractionReminder
	KindHighlight
	KindIntermissionIntroAnimation
	KindEndcardsCredits
	KindPreviewRecap
	KindNonMusic
)

// String returns a human-readable name for the kind.
func (k ActionableSegmentKind) String() string {
	switch k {
	case KindSponsor:
		return "Sponsor"
	case KindUnpaidSelfPromotion:
		return "Unpaid/Self Promotion"
	case KindInteractionReminder:
		return "Interaction Reminder"
	case KindHighlight:
		return "Highlight"
	case KindIntermissionIntroAnimation:
		return "Intermission/Intro Animation"
	case KindEndcardsCredits:
		return "Endcards/Credits"
	case KindPreviewRecap:
		return "Preview/Recap"
	case KindNonMusic:
		return "Non-Music"
	}
	return "unknown"
}

// Category returns the API category string for the kind.
func (k ActionableSegmentKind) Category() Category {
	switch k {
	case KindSponsor:
		return CategorySponsor
	case KindUnpaidSelfPromotion:
		return CategoryUnpaidSelfPromotion
	case KindInteractionReminder:
		return CategoryInteractionReminder
	case KindHighlight:
		return CategoryHighlight
	case KindIntermissionIntroAnimation:
		return CategoryIntermissionIntro
	case KindEndcardsCredits:
		return CategoryEndcardsCredits
	case KindPreviewRecap:
		return CategoryPreviewRecap
	case KindNonMusic:
		return CategoryNonMusic
	}
	return ""
}

// ActionableSegment is the tagged variant over segment kinds. Each kind
// carries only the payload shape it needs: every kind holds a TimeSection
// except Highlight, which is a single TimePoint. The set is closed; callers
// switch on the concrete type or on Kind().
type ActionableSegment interface {
	// Kind identifies the variant without a type switch.
	Kind() ActionableSegmentKind

	sealed()
}

// Sponsor is a paid promotion, referral, or direct advertisement.
type Sponsor struct {
	Section TimeSection `json:"section"`
}

// UnpaidSelfPromotion is an unpaid or self promotion (merch, donations,
// collaborations).
type UnpaidSelfPromotion struct {
	Section TimeSection `json:"section"`
}

// InteractionReminder is a reminder to like, subscribe, or follow.
type InteractionReminder struct {
	Section TimeSection `json:"section"`
}

// Highlight marks the point a viewer is most likely looking for.
type Highlight struct {
	Point TimePoint `json:"point"`
}

// IntermissionIntroAnimation is an intro, intermission, or pause segment
// without actual content.
type IntermissionIntroAnimation struct {
	Section TimeSection `json:"section"`
}

// EndcardsCredits covers credits and endcards shown after the content ends.
type EndcardsCredits struct {
	Section TimeSection `json:"section"`
}

// PreviewRecap is a recap of this or other videos, or a preview of what is
// coming up.
type PreviewRecap struct {
	Section TimeSection `json:"section"`
}

// NonMusic is a section of a music video without music.
type NonMusic struct {
	Section TimeSection `json:"section"`
}

func (Sponsor) Kind() ActionableSegmentKind             { return KindSponsor }
func (UnpaidSelfPromotion) Kind() ActionableSegmentKind { return KindUnpaidSelfPromotion }
func (InteractionReminder) Kind() ActionableSegmentKind { return KindInteractionReminder }
func (Highlight) Kind() ActionableSegmentKind           { return KindHighlight }
func (IntermissionIntroAnimation) Kind() ActionableSegmentKind {
	return KindIntermissionIntroAnimation
}
func (EndcardsCredits) Kind() ActionableSegmentKind { return KindEndcardsCredits }
func (PreviewRecap) Kind() ActionableSegmentKind    { return KindPreviewRecap }
func (NonMusic) Kind() ActionableSegmentKind        { return KindNonMusic }

func (Sponsor) sealed()                    {}
func (UnpaidSelfPromotion) sealed()        {}
func (InteractionReminder) sealed()        {}
func (Highlight) sealed()                  {}
func (IntermissionIntroAnimation) sealed() {}
func (EndcardsCredits) sealed()            {}
func (PreviewRecap) sealed()               {}
func (NonMusic) sealed()                   {}

// Segment is a single validated skip segment as returned to the caller.
// Immutable once constructed; the caller owns it after return.
type Segment struct {
	// ActionableSegment carries the kind and its time payload.
	ActionableSegment ActionableSegment `json:"segment"`
	// ActionType is what a player should do with the segment.
	ActionType ActionType `json:"action_type"`
	// UUID uniquely identifies the segment submission.
	UUID string `json:"uuid"`
	// Locked reports whether the segment is locked by a moderator.
	Locked bool `json:"locked"`
	// Votes is the submission's vote total; it may be negative.
	Votes int32 `json:"votes"`
	// VideoDurationUponSubmission is the video duration in seconds at the
	// time the segment was submitted, or 0 when unknown.
	VideoDurationUponSubmission float32 `json:"video_duration_upon_submission"`
}

// Kind returns the segment's variant kind.
func (s Segment) Kind() ActionableSegmentKind {
	return s.ActionableSegment.Kind()
}

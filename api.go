package sponsorblock

import "strconv"

// Closed lookup tables between the API's wire strings and the domain
// enumerations. Unknown strings are data errors: the API's value set is
// versioned with the protocol, so an unrecognized value means the response
// cannot be trusted.

var segmentKindByCategory = map[string]ActionableSegmentKind{
	"sponsor":        KindSponsor,
	"selfpromo":      KindUnpaidSelfPromotion,
	"interaction":    KindInteractionReminder,
	"poi_highlight":  KindHighlight,
	"intro":          KindIntermissionIntroAnimation,
	"outro":          KindEndcardsCredits,
	"preview":        KindPreviewRecap,
	"music_offtopic": KindNonMusic,
}

var actionTypeByName = map[string]ActionType{
	"skip":    ActionTypeSkip,
	"mute":    ActionTypeMute,
	"full":    ActionTypeFullVideo,
	"poi":     ActionTypePoi,
	"chapter": ActionTypeChapter,
}

// segmentKindFromAPI maps an API category string to its segment kind.
func segmentKindFromAPI(category string) (ActionableSegmentKind, error) {
	kind, ok := segmentKindByCategory[category]
	if !ok {
		return 0, &BadDataError{Reason: "unknown segment category " + strconv.Quote(category)}
	}
	return kind, nil
}

// actionTypeFromAPI maps an API action-type string to its enumeration value.
func actionTypeFromAPI(name string) (ActionType, error) {
	action, ok := actionTypeByName[name]
	if !ok {
		return 0, &BadDataError{Reason: "unknown action type " + strconv.Quote(name)}
	}
	return action, nil
}

package sponsorblock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

const segmentsEndpoint = "/skipSegments"

// rawSegment is the wire shape of a single segment. Fields absent from the
// payload decode to their zero values; the wire format tolerates partial
// records.
type rawSegment struct {
	Category      string     `json:"category"`
	ActionType    string     `json:"actionType"`
	Segment       [2]float32 `json:"segment"`
	UUID          string     `json:"UUID"`
	Locked        uint8      `json:"locked"`
	Votes         int32      `json:"votes"`
	VideoDuration float32    `json:"videoDuration"`
}

// rawHashMatch is one hash bucket from a private search. Several videos can
// share a truncated hash prefix, so the response may carry several buckets;
// at most one belongs to the video that was asked for.
type rawHashMatch struct {
	VideoID  string       `json:"videoID"`
	Hash     string       `json:"hash"`
	Segments []rawSegment `json:"segments"`
}

// FetchSegments fetches the skip segments for a video.
//
// The returned error can be any of the types documented in errors.go. The
// one most callers want to handle separately is an *HTTPError with status
// 404, which means no segments exist for the video; see IsNotFound.
func (c *Client) FetchSegments(ctx context.Context, videoID string, categories AcceptedCategories) ([]Segment, error) {
	return c.FetchSegmentsWithRequired(ctx, videoID, categories, nil)
}

// FetchSegmentsWithRequired fetches the skip segments for a video,
// additionally naming segment UUIDs that must be included even if they would
// otherwise be filtered server-side (for example, for a low vote count).
// With an empty requiredSegments it behaves exactly like FetchSegments.
func (c *Client) FetchSegmentsWithRequired(ctx context.Context, videoID string, categories AcceptedCategories, requiredSegments []string) ([]Segment, error) {
	mode := "plain"
	if c.cfg.PrivateSearches {
		mode = "private"
	}

	start := time.Now()
	segments, err := c.fetchSegments(ctx, videoID, categories, requiredSegments)
	c.metrics.observeFetch(mode, start, err, len(segments))
	return segments, err
}

func (c *Client) fetchSegments(ctx context.Context, videoID string, categories AcceptedCategories, requiredSegments []string) ([]Segment, error) {
	query := url.Values{}
	query.Set("categories", categories.GenURLValue())
	query.Set("service", c.cfg.Service)
	// An empty requiredSegments list is omitted entirely: some servers treat
	// an empty list parameter differently from its absence.
	if len(requiredSegments) > 0 {
		query.Set("requiredSegments", toURLArray(requiredSegments))
	}

	var endpoint string
	if c.cfg.PrivateSearches {
		// Only a digest prefix goes on the wire; the plaintext video ID
		// never leaves the process.
		prefix := HashVideoID(videoID)[:c.cfg.HashPrefixLength]
		endpoint = c.cfg.BaseURL + segmentsEndpoint + "/" + prefix
	} else {
		query.Set("videoID", videoID)
		endpoint = c.cfg.BaseURL + segmentsEndpoint
	}

	resp, err := c.http.Get(ctx, endpoint+"?"+query.Encode())
	if err != nil {
		return nil, err
	}

	var raw []rawSegment
	if c.cfg.PrivateSearches {
		raw, err = decodeHashMatches(resp.Body, videoID)
	} else {
		raw, err = decodeSegments(resp.Body)
	}
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(raw))
	for _, r := range raw {
		segment, err := normalizeSegment(r)
		if err != nil {
			// A single malformed segment aborts the whole batch; dropping it
			// silently would mask server-side data corruption.
			return nil, err
		}
		segments = append(segments, segment)
	}
	return segments, nil
}

// decodeSegments deserializes a plain-mode response body.
func decodeSegments(body []byte) ([]rawSegment, error) {
	var segments []rawSegment
	if err := json.Unmarshal(body, &segments); err != nil {
		return nil, &DeserializationError{Err: err}
	}
	return segments, nil
}

// decodeHashMatches deserializes a private-search response body and selects
// the bucket belonging to videoID. The match is exact and case-sensitive. A
// matching bucket with no segments is a valid empty result; no matching
// bucket at all is ErrNoMatchingVideoHash.
func decodeHashMatches(body []byte, videoID string) ([]rawSegment, error) {
	var matches []rawHashMatch
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, &DeserializationError{Err: err}
	}
	for _, match := range matches {
		if match.VideoID == videoID {
			return match.Segments, nil
		}
	}
	return nil, ErrNoMatchingVideoHash
}

// normalizeSegment validates a wire record and assembles the domain segment.
// The first failing check wins.
func normalizeSegment(raw rawSegment) (Segment, error) {
	start, end := raw.Segment[0], raw.Segment[1]
	if start > end {
		return Segment{}, &BadDataError{
			Reason: fmt.Sprintf("segment start (%v) > end (%v)", start, end),
		}
	}
	if start < 0 {
		return Segment{}, &BadDataError{
			Reason: fmt.Sprintf("segment start (%v) < 0", start),
		}
	}
	if end < 0 {
		return Segment{}, &BadDataError{
			Reason: fmt.Sprintf("segment end (%v) < 0", end),
		}
	}

	kind, err := segmentKindFromAPI(raw.Category)
	if err != nil {
		return Segment{}, err
	}
	actionType, err := actionTypeFromAPI(raw.ActionType)
	if err != nil {
		return Segment{}, err
	}

	section := TimeSection{Start: start, End: end}
	var actionable ActionableSegment
	switch kind {
	case KindSponsor:
		actionable = Sponsor{Section: section}
	case KindUnpaidSelfPromotion:
		actionable = UnpaidSelfPromotion{Section: section}
	case KindInteractionReminder:
		actionable = InteractionReminder{Section: section}
	case KindHighlight:
		// The server encodes a highlight as a degenerate range; only the
		// first element is meaningful.
		actionable = Highlight{Point: TimePoint{Point: start}}
	case KindIntermissionIntroAnimation:
		actionable = IntermissionIntroAnimation{Section: section}
	case KindEndcardsCredits:
		actionable = EndcardsCredits{Section: section}
	case KindPreviewRecap:
		actionable = PreviewRecap{Section: section}
	case KindNonMusic:
		actionable = NonMusic{Section: section}
	}

	return Segment{
		ActionableSegment:           actionable,
		ActionType:                  actionType,
		UUID:                        raw.UUID,
		Locked:                      raw.Locked != 0,
		Votes:                       raw.Votes,
		VideoDurationUponSubmission: raw.VideoDuration,
	}, nil
}

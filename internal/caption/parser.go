package caption

import (
	"encoding/json"
	"strings"

	"github.com/kosearch/subcollect/internal/errors"
	"github.com/kosearch/subcollect/internal/model"
)

// json3Payload represents the yt-dlp json3 subtitle format
type json3Payload struct {
	Events *[]json3Event `json:"events"`
}

// json3Event is one caption event. Events without segs carry positioning
// or window metadata and produce no text.
type json3Event struct {
	StartMS    int64      `json:"tStartMs"`
	DurationMS int64      `json:"dDurationMs"`
	Segs       []json3Seg `json:"segs"`
}

type json3Seg struct {
	UTF8 string `json:"utf8"`
}

// Parse converts a raw json3 caption payload into ordered caption segments.
// Event order is preserved as-is; timestamps are not re-validated.
// A payload that cannot be decoded, or that has no events container at all,
// yields a PARSE_ERROR.
func Parse(payload []byte) ([]*model.CaptionSegment, error) {
	var doc json3Payload
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeParse, "failed to decode caption payload")
	}
	if doc.Events == nil {
		return nil, errors.New(errors.CodeParse, "caption payload has no events")
	}

	segments := make([]*model.CaptionSegment, 0, len(*doc.Events))
	for _, event := range *doc.Events {
		if len(event.Segs) == 0 {
			continue
		}

		var sb strings.Builder
		for _, seg := range event.Segs {
			if seg.UTF8 == "\n" || strings.TrimSpace(seg.UTF8) == "" {
				continue
			}
			sb.WriteString(seg.UTF8)
		}

		text := strings.TrimSpace(sb.String())
		if text == "" {
			continue
		}

		segments = append(segments, &model.CaptionSegment{
			StartMS:        event.StartMS,
			EndMS:          event.StartMS + event.DurationMS,
			Text:           text,
			TextNormalized: Normalize(text),
		})
	}

	return segments, nil
}

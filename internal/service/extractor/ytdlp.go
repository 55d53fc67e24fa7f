package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kosearch/subcollect/internal/caption"
	"github.com/kosearch/subcollect/internal/errors"
	"github.com/kosearch/subcollect/internal/model"
	"github.com/kosearch/subcollect/internal/service/common"
)

const (
	listTimeout     = 120 * time.Second
	metadataTimeout = 30 * time.Second
	captionTimeout  = 60 * time.Second
)

// ytdlpExtractor implements Extractor by shelling out to yt-dlp
type ytdlpExtractor struct {
	cmdRunner common.CmdRunner
	tempDir   string
	now       func() time.Time
}

// NewYtdlpExtractor creates a new yt-dlp backed Extractor.
// tempDir holds downloaded caption files; it is created on demand.
func NewYtdlpExtractor(cmdRunner common.CmdRunner, tempDir string) Extractor {
	return NewYtdlpExtractorWithClock(cmdRunner, tempDir, time.Now)
}

// NewYtdlpExtractorWithClock creates a new Extractor with a custom clock (for testing).
// The clock supplies the publish-date fallback when the upload date is unparseable.
func NewYtdlpExtractorWithClock(cmdRunner common.CmdRunner, tempDir string, now func() time.Time) Extractor {
	return &ytdlpExtractor{
		cmdRunner: cmdRunner,
		tempDir:   tempDir,
		now:       now,
	}
}

// FetchVideoIDs lists video ids for a channel using a flat playlist dump
func (e *ytdlpExtractor) FetchVideoIDs(ctx context.Context, channelID string, limit int) ([]string, error) {
	if channelID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "channel ID is required")
	}
	if !strings.HasPrefix(channelID, "UC") {
		return nil, errors.New(errors.CodeInvalidArg, "invalid channel ID format (must start with UC)")
	}

	channelURL := "https://www.youtube.com/channel/" + channelID + "/videos"
	args := []string{"--flat-playlist", "--print", "id"}
	if limit > 0 {
		args = append(args, "--playlist-end", fmt.Sprintf("%d", limit))
	}
	args = append(args, channelURL)

	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	output, err := e.cmdRunner.Run(ctx, "yt-dlp", args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "failed to list channel videos with yt-dlp")
	}

	var ids []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line != "" {
			ids = append(ids, line)
		}
	}

	return ids, nil
}

// FetchMetadata retrieves the metadata payload for one video and interprets it
func (e *ytdlpExtractor) FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	if videoID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video ID is required")
	}

	args := []string{"--dump-json", watchURL(videoID)}

	ctx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	output, err := e.cmdRunner.Run(ctx, "yt-dlp", args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "failed to fetch video metadata with yt-dlp")
	}

	return interpretMetadata(output, videoID, e.now())
}

// FetchCaptions downloads the caption track of one language as json3 and parses it.
// yt-dlp writes the track next to the requested output path; a missing file
// means the language has no captions, which is not an error.
func (e *ytdlpExtractor) FetchCaptions(ctx context.Context, videoID, lang string, preferAuto bool) ([]*model.CaptionSegment, error) {
	if err := os.MkdirAll(e.tempDir, 0755); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to create caption temp directory")
	}

	outputPath := filepath.Join(e.tempDir, videoID+"_"+lang)

	args := []string{"--skip-download"}
	if preferAuto {
		args = append(args, "--write-auto-subs")
	} else {
		args = append(args, "--write-subs", "--write-auto-subs")
	}
	args = append(args,
		"--sub-lang", lang,
		"--sub-format", "json3",
		"-o", outputPath,
		watchURL(videoID),
	)

	ctx, cancel := context.WithTimeout(ctx, captionTimeout)
	defer cancel()

	// yt-dlp exits non-zero for transient warnings too; absence of the
	// subtitle file is the authoritative signal.
	_, runErr := e.cmdRunner.Run(ctx, "yt-dlp", args...)

	subtitleFile := outputPath + "." + lang + ".json3"
	data, err := os.ReadFile(subtitleFile)
	if err != nil {
		if os.IsNotExist(err) {
			if runErr != nil && ctx.Err() != nil {
				return nil, errors.Wrap(runErr, errors.CodeExternal, "caption download timed out")
			}
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to read caption file")
	}
	defer os.Remove(subtitleFile)

	return caption.Parse(data)
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

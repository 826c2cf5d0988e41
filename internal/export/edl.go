// Package export generates CMX3600-style edit decision lists from a
// project, for handoff to desktop NLEs.
package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"reelcut/internal/domain"
)

// GenerateEDL renders the project's video track as an EDL. Clips are
// emitted in timeline order with a sequentially packed record track;
// timeline gaps and overlaps collapse, since an EDL models a straight cut
// list.
func GenerateEDL(project *domain.Project) string {
	fps := int(math.Round(project.Framerate))
	if fps <= 0 {
		fps = 30
	}
	isDropFrame := math.Abs(project.Framerate-29.97) < 0.01 || math.Abs(project.Framerate-59.94) < 0.01

	lines := []string{fmt.Sprintf("TITLE: %s", project.Title)}
	if isDropFrame {
		lines = append(lines, "FCM: DROP FRAME")
	} else {
		lines = append(lines, "FCM: NON-DROP FRAME")
	}
	lines = append(lines, "")

	clips := orderedVideoClips(project)
	recordOffset := 0.0
	for i, clip := range clips {
		srcIn := secondsToTimecode(clip.StartTime, fps)
		srcOut := secondsToTimecode(clip.EndTime, fps)
		recIn := secondsToTimecode(recordOffset, fps)
		recOut := secondsToTimecode(recordOffset+clip.Duration(), fps)

		lines = append(lines,
			fmt.Sprintf("%03d  %-8s %-5s C        %s %s %s %s", i+1, "AX", "V", srcIn, srcOut, recIn, recOut),
			fmt.Sprintf("* FROM CLIP NAME:  %s", clip.VideoID),
			fmt.Sprintf("* SOURCE FILE:  %s", clip.SourceURL),
		)
		recordOffset += clip.Duration()
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// orderedVideoClips returns the video track's clips sorted by timeline
// position without mutating the project.
func orderedVideoClips(project *domain.Project) []*domain.Clip {
	track := project.VideoTrack()
	if track == nil {
		return nil
	}
	clips := make([]*domain.Clip, len(track.Clips))
	copy(clips, track.Clips)
	sort.SliceStable(clips, func(i, j int) bool {
		return clips[i].Position < clips[j].Position
	})
	return clips
}

func secondsToTimecode(sec float64, fps int) string {
	totalFrames := int(math.Round(sec * float64(fps)))
	frames := totalFrames % fps
	totalSeconds := totalFrames / fps
	seconds := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	hours := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, seconds, frames)
}

package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// GetVideoDuration probes the file and returns its duration in seconds.
func GetVideoDuration(videoPath string) (float64, error) {
	out, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to probe video")
	}
	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, errors.WithMessage(err, "failed to parse probe output")
	}
	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "invalid duration in probe output")
	}
	return duration, nil
}

// thumbnailOutputPath picks a unique jpg name so concurrent extractions
// never share a file.
func thumbnailOutputPath(outputDir string) string {
	return filepath.Join(outputDir, strconv.FormatInt(GenID(), 10)+".jpg")
}

// GetVideoThumbnail extracts the first frame as a jpg under outputDir.
func GetVideoThumbnail(videoPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "failed to create folders")
	}
	outputPath := thumbnailOutputPath(outputDir)
	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss":      "00:00:00",
			"vframes": "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", errors.WithMessage(err, "failed to generate the thumbnail")
	}
	return outputPath, nil
}

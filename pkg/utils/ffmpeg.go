package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// GetVideoDuration 通过ffprobe读取视频时长（秒）
func GetVideoDuration(videoPath string) (float64, error) {
	out, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, errors.WithMessage(err, "ffprobe failed")
	}
	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, errors.WithMessage(err, "failed to parse ffprobe output")
	}
	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "ffprobe returned no duration")
	}
	return duration, nil
}

// thumnailName 文件名每次唯一 并发抽帧时互不覆盖
func thumnailName() string {
	return "thumnail_" + uuid.New().String() + ".jpg"
}

// GetVideoThumnail 从视频首帧抽取一张封面图
func GetVideoThumnail(videoPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "Failed to create folders")
	}
	outputPath := filepath.Join(outputDir, thumnailName())
	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss":      "00:00:00",
			"vframes": "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", errors.WithMessage(err, "Failed to generate the thumnail")
	}
	return outputPath, nil
}

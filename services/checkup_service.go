package services

import (
	"context"
	"os"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/utils"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// CheckupService pulls raw text lines off a photographed health-checkup
// report so the client can prefill the upload-mode lab values.
type CheckupService struct {
	client *rekognition.Client
}

func NewCheckupService() (*CheckupService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &CheckupService{client: rekognition.NewFromConfig(cfg)}, nil
}

// ExtractReportText runs text detection on a base64-encoded report image and
// returns the detected lines in reading order.
func (s *CheckupService) ExtractReportText(base64Img string) ([]string, error) {
	_, data, err := utils.DecodeImageDataURI(base64Img)
	if err != nil {
		return nil, err
	}

	out, err := s.client.DetectText(context.TODO(), &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: data},
	})
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, d := range out.TextDetections {
		if d.Type == types.TextTypesLine && d.DetectedText != nil {
			lines = append(lines, *d.DetectedText)
		}
	}
	return lines, nil
}

package services

import (
	"context"
	"fmt"
	"os"

	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/sirupsen/logrus"
)

// SNSSMSSender delivers the alert SMS broadcast through AWS SNS.
type SNSSMSSender struct {
	sns *awssns.Client
	log *logrus.Logger
}

func NewSNSSMSSender(log *logrus.Logger) (*SNSSMSSender, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "ap-south-1"
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SNSSMSSender{sns: awssns.NewFromConfig(cfg), log: log}, nil
}

// AlertSMSBody is the message template shared with the client copy.
func AlertSMSBody(a *models.Alert) string {
	return fmt.Sprintf("🚨 DISASTER ALERT 🚨\nType: %s\nLocation: %s\nDescription: %s\nStay Safe! - AapdaRakshak",
		a.Type, a.Location, a.Description)
}

// SendSMS takes the whole recipient batch in one call. Individual publish
// failures are logged and do not stop the rest of the batch.
func (s *SNSSMSSender) SendSMS(ctx context.Context, numbers []string, message string) error {
	for _, number := range numbers {
		_, err := s.sns.Publish(ctx, &awssns.PublishInput{
			PhoneNumber: aws.String(number),
			Message:     aws.String(message),
			MessageAttributes: map[string]snstypes.MessageAttributeValue{
				"AWS.SNS.SMS.SMSType": {
					DataType:    aws.String("String"),
					StringValue: aws.String("Transactional"),
				},
			},
		})
		if err != nil {
			s.log.WithError(err).WithField("number", number).Warn("SMS publish failed")
		}
	}
	return nil
}

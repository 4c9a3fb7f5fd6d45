// Package notify delivers new-lead alerts to the agency inbox over SES,
// with an optional SNS publish for channel fan-out.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/FaizBuildsStuff/matera-media/internal/common/config"
	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
	"github.com/FaizBuildsStuff/matera-media/internal/inquiry"
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// LeadNotifier sends one alert per accepted inquiry. Channels are
// config-gated independently; a notifier with both channels disabled is
// a no-op.
type LeadNotifier struct {
	config    config.NotificationConfig
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewLeadNotifier(ctx context.Context, cfg config.NotificationConfig, region string, log logger.Logger) (*LeadNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &LeadNotifier{
		config:    cfg,
		logger:    log,
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
	}, nil
}

// NewLeadNotifierWithClients injects the AWS clients, for tests.
func NewLeadNotifierWithClients(cfg config.NotificationConfig, sesClient SESService, snsClient SNSService, log logger.Logger) *LeadNotifier {
	return &LeadNotifier{
		config:    cfg,
		logger:    log,
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

// NotifyLead sends the new-lead alert over every enabled channel. One
// channel failing does not stop the other; the first error is returned
// after all channels have been tried.
func (n *LeadNotifier) NotifyLead(ctx context.Context, draft inquiry.Draft, submittedAt time.Time) error {
	var firstErr error

	if n.config.Email.Enabled {
		subject := fmt.Sprintf("New inquiry from %s", strings.TrimSpace(draft.Name))
		if err := n.sendEmail(ctx, subject, emailBody(draft, submittedAt)); err != nil {
			n.logger.Error("email send failed", map[string]interface{}{
				"error": err,
				"to":    n.config.Email.ToEmail,
			})
			firstErr = apperrors.NewNotificationSendFailedError("email", err)
		}
	}

	if n.config.SMS.Enabled {
		if err := n.publishLead(ctx, draft, submittedAt); err != nil {
			n.logger.Error("SNS publish failed", map[string]interface{}{
				"error": err,
				"topic": n.config.SMS.TopicARN,
			})
			if firstErr == nil {
				firstErr = apperrors.NewNotificationSendFailedError("sns", err)
			}
		}
	}

	return firstErr
}

func (n *LeadNotifier) sendEmail(ctx context.Context, subject, body string) error {
	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{n.config.Email.ToEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.config.Email.FromEmail),
	})
	return err
}

func (n *LeadNotifier) publishLead(ctx context.Context, draft inquiry.Draft, submittedAt time.Time) error {
	payload, err := json.Marshal(map[string]string{
		"name":        strings.TrimSpace(draft.Name),
		"email":       strings.TrimSpace(draft.Email),
		"sourcePage":  draft.SourcePage,
		"submittedAt": submittedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(n.config.SMS.TopicARN),
		Message:  aws.String(string(payload)),
	}
	if n.config.SMS.SenderID != "" {
		input.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(n.config.SMS.SenderID),
			},
		}
	}

	_, err = n.snsClient.Publish(ctx, input)
	return err
}

func emailBody(draft inquiry.Draft, submittedAt time.Time) string {
	var b strings.Builder
	write := func(label, value string) {
		if v := strings.TrimSpace(value); v != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, v)
		}
	}

	write("Name", draft.Name)
	write("Email", draft.Email)
	write("Company", draft.Company)
	write("Phone", draft.Phone)
	write("Service", draft.ServiceInterest)
	write("Budget", draft.Budget)
	write("Timeline", draft.Timeline)
	write("Message", draft.Message)
	write("Source page", draft.SourcePage)
	write("Submitted at", submittedAt.UTC().Format(time.RFC3339))
	return b.String()
}

package sms

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// publisher is the subset of *sns.Client used here.
type publisher interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newSNSClientFromConfig = func(cfg aws.Config, optFns ...func(*sns.Options)) publisher {
		return sns.NewFromConfig(cfg, optFns...)
	}
)

// SNSTransport publishes messages directly to phone numbers through AWS SNS.
type SNSTransport struct {
	client publisher
}

// NewSNSTransport uses the static credentials when both are set and the SDK
// default credential chain otherwise.
func NewSNSTransport(ctx context.Context, region, accessKeyID, secretAccessKey string) (*SNSTransport, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return &SNSTransport{client: newSNSClientFromConfig(cfg)}, nil
}

func (t *SNSTransport) Send(ctx context.Context, destination, body string) error {
	_, err := t.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(destination),
		Message:     aws.String(body),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}

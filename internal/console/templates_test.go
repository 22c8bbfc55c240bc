package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, input string) string {
	t.Helper()
	link, err := Link(mustParse(t, input))
	require.NoError(t, err)
	return link
}

func TestTemplates_Links(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "ec2 instance",
			input: "arn:aws:ec2:us-east-1:123456789012:instance/i-0abcd1234",
			want:  "https://console.aws.amazon.com/ec2/home?region=us-east-1#InstanceDetails:instanceId=i-0abcd1234",
		},
		{
			name:  "dynamodb table",
			input: "arn:aws:dynamodb:eu-west-1:123456789012:table/orders",
			want:  "https://console.aws.amazon.com/dynamodbv2/home?region=eu-west-1#table?name=orders",
		},
		{
			name:  "lambda function",
			input: "arn:aws:lambda:us-east-1:123456789012:function:my-func",
			want:  "https://console.aws.amazon.com/lambda/home?region=us-east-1#/functions/my-func?tab=code",
		},
		{
			name:  "lambda function with version qualifier",
			input: "arn:aws:lambda:us-east-1:123456789012:function:my-func:42",
			want:  "https://console.aws.amazon.com/lambda/home?region=us-east-1#/functions/my-func/versions/42?tab=code",
		},
		{
			name:  "lambda layer version",
			input: "arn:aws:lambda:us-east-1:123456789012:layer:shared-libs:3",
			want:  "https://console.aws.amazon.com/lambda/home?region=us-east-1#/layers/shared-libs/versions/3",
		},
		{
			name:  "ecs cluster",
			input: "arn:aws:ecs:us-east-1:123456789012:cluster/prod",
			want:  "https://console.aws.amazon.com/ecs/home?region=us-east-1#/clusters/prod/services",
		},
		{
			name:  "ecs service splits cluster and service",
			input: "arn:aws:ecs:us-east-1:123456789012:service/prod/frontend",
			want:  "https://console.aws.amazon.com/ecs/home?region=us-east-1#/clusters/prod/services/frontend/details",
		},
		{
			name:  "ecs task definition carries revision",
			input: "arn:aws:ecs:us-east-1:123456789012:task-definition/web:3",
			want:  "https://console.aws.amazon.com/ecs/home?region=us-east-1#/taskDefinitions/web/3",
		},
		{
			name:  "cloudwatch logs group is double-escaped",
			input: "arn:aws:logs:us-east-1:123456789012:log-group:/aws/lambda/my-func:*",
			want:  "https://console.aws.amazon.com/cloudwatch/home?region=us-east-1#logsV2:log-groups/log-group/$252Faws$252Flambda$252Fmy-func",
		},
		{
			name:  "iam user is global and uses last path segment",
			input: "arn:aws:iam::123456789012:user/division/alice",
			want:  "https://console.aws.amazon.com/iam/home#/users/alice",
		},
		{
			name:  "iam root",
			input: "arn:aws:iam::123456789012:root",
			want:  "https://console.aws.amazon.com/iam/home",
		},
		{
			name:  "sns topic routes on raw arn",
			input: "arn:aws:sns:us-east-1:123456789012:alerts",
			want:  "https://console.aws.amazon.com/sns/v3/home?region=us-east-1#/topic/arn:aws:sns:us-east-1:123456789012:alerts",
		},
		{
			name:  "sqs queue url is reassembled and encoded",
			input: "arn:aws:sqs:us-east-1:123456789012:jobs",
			want:  "https://console.aws.amazon.com/sqs/v2/home?region=us-east-1#/queues/https%3A%2F%2Fsqs.us-east-1.amazonaws.com%2F123456789012%2Fjobs",
		},
		{
			name:  "amplify job strips zero padding",
			input: "arn:aws:amplify:us-east-1:123456789012:apps/d2vu2nlz/branches/main/jobs/0000000042",
			want:  "https://console.aws.amazon.com/amplify/home?region=us-east-1#/d2vu2nlz/main/42",
		},
		{
			name:  "cognito identity pool id is reassembled across the colon",
			input: "arn:aws:cognito-identity:us-east-1:123456789012:identitypool/us-east-1:12345678-abcd",
			want:  "https://console.aws.amazon.com/cognito/pool/edit/?region=us-east-1&id=us-east-1:12345678-abcd",
		},
		{
			name:  "cloudformation stack routes on encoded raw arn",
			input: "arn:aws:cloudformation:us-east-1:123456789012:stack/my-stack/1a2b3c",
			want:  "https://console.aws.amazon.com/cloudformation/home?region=us-east-1#/stacks/stackinfo?stackId=arn%3Aaws%3Acloudformation%3Aus-east-1%3A123456789012%3Astack%2Fmy-stack%2F1a2b3c",
		},
		{
			name:  "secretsmanager strips the random suffix",
			input: "arn:aws:secretsmanager:us-east-1:123456789012:secret:prod/db-AbC123",
			want:  "https://console.aws.amazon.com/secretsmanager/home?region=us-east-1#!/secret?name=prod%2Fdb",
		},
		{
			name:  "autoscaling group name follows the marker",
			input: "arn:aws:autoscaling:us-east-1:123456789012:autoScalingGroup:1a2b3c:autoScalingGroupName/web-asg",
			want:  "https://console.aws.amazon.com/ec2autoscaling/home?region=us-east-1#/details/web-asg?view=details",
		},
		{
			name:  "apigateway rest api",
			input: "arn:aws:apigateway:us-east-1::/restapis/a1b2c3",
			want:  "https://console.aws.amazon.com/apigateway/home?region=us-east-1#/apis/a1b2c3/resources",
		},
		{
			name:  "events rule on the default bus",
			input: "arn:aws:events:us-east-1:123456789012:rule/nightly",
			want:  "https://console.aws.amazon.com/events/home?region=us-east-1#/eventbus/default/rules/nightly",
		},
		{
			name:  "events rule on a custom bus",
			input: "arn:aws:events:us-east-1:123456789012:rule/orders-bus/on-order",
			want:  "https://console.aws.amazon.com/events/home?region=us-east-1#/eventbus/orders-bus/rules/on-order",
		},
		{
			name:  "route53 hosted zone is global",
			input: "arn:aws:route53:::hostedzone/Z1D633PJN98FT9",
			want:  "https://console.aws.amazon.com/route53/v2/hostedzones#ListRecordSets/Z1D633PJN98FT9",
		},
		{
			name:  "kms key",
			input: "arn:aws:kms:us-east-1:123456789012:key/1234abcd-12ab",
			want:  "https://console.aws.amazon.com/kms/home?region=us-east-1#/kms/keys/1234abcd-12ab",
		},
		{
			name:  "mq broker routes on the trailing id",
			input: "arn:aws:mq:us-east-1:123456789012:broker:my-broker:b-1a2b3c",
			want:  "https://console.aws.amazon.com/amazon-mq/home?region=us-east-1#/brokers/details?id=b-1a2b3c",
		},
		{
			name:  "govcloud ec2 instance uses the govcloud console host",
			input: "arn:aws-us-gov:ec2:us-gov-west-1:123456789012:instance/i-0abcd1234",
			want:  "https://console.amazonaws-us-gov.com/ec2/home?region=us-gov-west-1#InstanceDetails:instanceId=i-0abcd1234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(t, tt.input))
		})
	}
}

func TestTemplates_BuilderDeclines(t *testing.T) {
	// Builders return "" for sub-cases they cannot route; the resolver
	// surfaces that as an unsupported resource type.
	inputs := []string{
		"arn:aws:amplify:us-east-1:123456789012:apps/d2vu2nlz",
		"arn:aws:amplify:us-east-1:123456789012:apps/d2vu2nlz/branches/main",
		"arn:aws:apigateway:us-east-1::/usageplans/u-123",
		"arn:aws:ecs:us-east-1:123456789012:service/bare-name",
		"arn:aws:iam::123456789012:something-else",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Link(mustParse(t, input))
			require.Error(t, err)
		})
	}
}

func TestTemplates_NoUnescapedRawInHostPosition(t *testing.T) {
	// Every generated link must start with https:// and a console host;
	// the region never appears in the scheme/host position unescaped
	// beyond the subdomain the builder itself chose.
	samples := []string{
		"arn:aws:s3:::my-bucket",
		"arn:aws:ec2:us-east-1:123456789012:instance/i-1",
		"arn:aws:lambda:us-east-1:123456789012:function:f",
	}
	for _, input := range samples {
		link := resolve(t, input)
		assert.True(t, strings.HasPrefix(link, "https://"), link)
	}
}

func TestEscapeLogGroup(t *testing.T) {
	assert.Equal(t, "$252Faws$252Flambda$252Ffn", escapeLogGroup("/aws/lambda/fn"))
	assert.Equal(t, "plain", escapeLogGroup("plain"))
	assert.Equal(t, "a$2523b", escapeLogGroup("a#b"))
}

func TestTrimZeroPadding(t *testing.T) {
	assert.Equal(t, "42", trimZeroPadding("0000000042"))
	assert.Equal(t, "7", trimZeroPadding("7"))
	assert.Equal(t, "0", trimZeroPadding("0000"))
}

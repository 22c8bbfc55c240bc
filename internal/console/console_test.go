package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnlink/arnlink/internal/arn"
	apperrors "github.com/arnlink/arnlink/internal/errors"
)

func mustParse(t *testing.T, text string) *arn.ARN {
	t.Helper()
	a, err := arn.Parse(text)
	require.NoError(t, err)
	return a
}

func TestLink_S3Bucket(t *testing.T) {
	link, err := Link(mustParse(t, "arn:aws:s3:::abcdefgh1234"))
	require.NoError(t, err)
	assert.Equal(t, "https://s3.console.aws.amazon.com/s3/buckets/abcdefgh1234", link)
}

func TestLink_PartitionHosts(t *testing.T) {
	tests := []struct {
		partition string
		host      string
	}{
		{"aws", "console.aws.amazon.com"},
		{"aws-us-gov", "console.amazonaws-us-gov.com"},
		{"aws-cn", "console.amazonaws.cn"},
	}

	for _, tt := range tests {
		t.Run(tt.partition, func(t *testing.T) {
			link, err := Link(mustParse(t, "arn:"+tt.partition+":s3:::my-bucket"))
			require.NoError(t, err)
			assert.Equal(t, "https://s3."+tt.host+"/s3/buckets/my-bucket", link)
		})
	}
}

func TestLink_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
	}{
		{"prefix is not arn", "urn:aws:s3:::my-bucket", apperrors.ErrCodeNotAnArn},
		{"unknown partition", "arn:aws-moon:s3:::my-bucket", apperrors.ErrCodeUnsupportedPartition},
		{"unknown service", "arn:aws:nosuchservice:us-east-1:123456789012:thing/t-1", apperrors.ErrCodeUnknownService},
		{"unknown resource type", "arn:aws:ec2:us-east-1:123456789012:widget/w-1", apperrors.ErrCodeUnsupportedResourceType},
		{"known type without link", "arn:aws:waf::123456789012:webacl/a1b2c3", apperrors.ErrCodeUnsupportedResourceType},
		{"builder declines sub-case", "arn:aws:amplify:us-east-1:123456789012:apps/d2vu2nlz", apperrors.ErrCodeUnsupportedResourceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := Link(mustParse(t, tt.input))
			require.Error(t, err)
			assert.Empty(t, link)
			assert.Equal(t, tt.code, apperrors.GetErrorCode(err))
		})
	}
}

func TestLink_Idempotence(t *testing.T) {
	a := mustParse(t, "arn:aws:lambda:us-east-1:123456789012:function:my-func")

	first, err := Link(a)
	require.NoError(t, err)
	second, err := Link(a)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestServices(t *testing.T) {
	services := Services()
	require.NotEmpty(t, services)
	assert.IsNonDecreasing(t, services)
	assert.Contains(t, services, "s3")
	assert.Contains(t, services, "ec2")
	assert.Contains(t, services, "lambda")
	assert.NotContains(t, services, "nosuchservice")
}

func TestResourceTypes(t *testing.T) {
	types, ok := ResourceTypes("ecs")
	require.True(t, ok)
	assert.Contains(t, types, "cluster")
	assert.Contains(t, types, "task-definition")
	// Types with no modeled link are still listed; the table is a
	// coverage inventory too.
	assert.Contains(t, types, "capacity-provider")

	_, ok = ResourceTypes("nosuchservice")
	assert.False(t, ok)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("s3", ""))
	assert.True(t, Supported("ecs", "service"))
	assert.False(t, Supported("ecs", "capacity-provider"))
	assert.False(t, Supported("ecs", "widget"))
	assert.False(t, Supported("nosuchservice", ""))
}

func TestTableShape(t *testing.T) {
	// The table is the single source of truth for supported resource
	// types; it should stay large and every service must have at least
	// one type entry.
	total := 0
	for service, entries := range templates {
		require.NotEmptyf(t, entries, "service %q has no resource types", service)
		total += len(entries)
	}
	assert.GreaterOrEqual(t, total, 150)
}

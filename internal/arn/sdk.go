package arn

import (
	awsarn "github.com/aws/aws-sdk-go-v2/aws/arn"
)

// FromSDK converts an aws-sdk-go-v2 ARN value into a parsed ARN, running the
// full validation pipeline so the result is safe to feed to the resolver.
func FromSDK(v awsarn.ARN) (*ARN, error) {
	return Parse(v.String())
}

// SDK converts the parsed ARN back to the aws-sdk-go-v2 representation. The
// SDK type keeps the resource portion opaque, so the type/id/revision split
// is re-serialized in the original delimiter style.
func (a *ARN) SDK() awsarn.ARN {
	return awsarn.ARN{
		Partition: a.Partition,
		Service:   a.Service,
		Region:    a.Region,
		AccountID: a.Account,
		Resource:  a.resourcePortion(),
	}
}

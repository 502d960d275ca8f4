/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/suparena/billingtotal/storagemodels"
)

// ScanAPI is the subset of *dynamodb.Client the scanner needs.
type ScanAPI interface {
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
}

// ClientOptions holds the connection settings for NewDynamoDBClient.
// Empty fields fall back to the default AWS configuration chain.
type ClientOptions struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// DynamodbScanner implements datastore.Scanner on top of the DynamoDB Scan API.
type DynamodbScanner struct {
	client    ScanAPI
	tableName string
}

// NewDynamoDBClient initializes a DynamoDB client.
// Static credentials are used only when both keys are set; otherwise the
// default provider chain applies (the execution role inside Lambda).
func NewDynamoDBClient(ctx context.Context, opts ClientOptions) (*sdk.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return client, nil
}

// NewScanner constructs a scanner over tableName using the given client.
func NewScanner(client ScanAPI, tableName string) *DynamodbScanner {
	return &DynamodbScanner{
		client:    client,
		tableName: tableName,
	}
}

// NewDynamodbScanner creates a DynamoDB client and wraps it in a scanner.
func NewDynamodbScanner(ctx context.Context, opts ClientOptions, tableName string) (*DynamodbScanner, error) {
	client, err := NewDynamoDBClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewScanner(client, tableName), nil
}

// TableName returns the scanned table.
func (d *DynamodbScanner) TableName() string {
	return d.tableName
}

// ScanPage issues a single Scan request and returns its items together with
// the LastEvaluatedKey to continue from.
func (d *DynamodbScanner) ScanPage(ctx context.Context, params *storagemodels.ScanParams) (*storagemodels.Page, error) {
	input := &sdk.ScanInput{
		TableName: aws.String(d.tableName),
	}
	if params != nil {
		input.ProjectionExpression = params.ProjectionExpression
		input.ExpressionAttributeNames = params.ExpressionAttributeNames
		input.Limit = params.Limit
		input.ConsistentRead = params.ConsistentRead
		if len(params.ExclusiveStartKey) > 0 {
			input.ExclusiveStartKey = params.ExclusiveStartKey
		}
	}

	out, err := d.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("Scan error: %w", err)
	}

	return &storagemodels.Page{
		Items:            out.Items,
		LastEvaluatedKey: out.LastEvaluatedKey,
	}, nil
}

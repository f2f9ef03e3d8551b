package limit

import (
	"context"
	"errors"
	"maps"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/jt0/quantity/gomerr"
	"github.com/jt0/quantity/logs"
)

// ItemAPI is the subset of *dynamodb.Client used by Store.
type ItemAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Store persists TrackingLimiters as items in a DynamoDB table with a single
// string partition key.
type Store struct {
	ddb          ItemAPI
	tableName    string
	keyAttribute string
}

func NewStore(ddb ItemAPI, tableName, keyAttribute string) *Store {
	return &Store{ddb: ddb, tableName: tableName, keyAttribute: keyAttribute}
}

// Load returns the limiter stored under id, or an empty one if there is none.
func (s *Store) Load(ctx context.Context, id string) (*TrackingLimiter, gomerr.Gomerr) {
	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.key(id),
		ConsistentRead: aws.Bool(true),
	}

	output, err := s.ddb.GetItem(ctx, input)
	if err != nil {
		logDependencyError(err)
		return nil, gomerr.Dependency("DynamoDB", input).Wrap(err)
	}

	limiter := &TrackingLimiter{}
	if output.Item == nil {
		return limiter, nil
	}

	if err = attributevalue.UnmarshalMap(output.Item, limiter); err != nil {
		return nil, gomerr.Unmarshal("TrackingLimiter", output.Item, limiter).Wrap(err)
	}

	return limiter, nil
}

// SaveIfDirty writes limiter under id if it has unsaved changes and then
// clears its dirty flag.
func (s *Store) SaveIfDirty(ctx context.Context, id string, limiter *TrackingLimiter) gomerr.Gomerr {
	if limiter == nil || !limiter.IsDirty() {
		return nil
	}

	item, err := attributevalue.MarshalMap(limiter)
	if err != nil {
		return gomerr.Marshal("TrackingLimiter", limiter).Wrap(err)
	}
	maps.Copy(item, s.key(id))

	// TODO: add a version attribute and condition expression so concurrent writers don't overwrite each other
	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	}
	if _, err = s.ddb.PutItem(ctx, input); err != nil {
		logDependencyError(err)
		return gomerr.Dependency("DynamoDB", input).Wrap(err)
	}

	limiter.ClearDirty()

	return nil
}

func (s *Store) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{s.keyAttribute: &types.AttributeValueMemberS{Value: id}}
}

func logDependencyError(err error) {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		logs.Error.Println(apiErr.ErrorCode(), apiErr.ErrorMessage())
	} else {
		logs.Error.Println(err.Error())
	}
}

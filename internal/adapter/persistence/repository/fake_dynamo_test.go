package repository

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items keyed by their "id" (or "number") attribute and
// records the last write inputs. Update expressions are not evaluated.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue

	putErr     error
	updateErr  error
	lastPut    *dynamodb.PutItemInput
	lastUpdate *dynamodb.UpdateItemInput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(item map[string]types.AttributeValue) string {
	for _, k := range []string{"id", "number"} {
		if s, ok := item[k].(*types.AttributeValueMemberS); ok {
			return s.Value
		}
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPut = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdate = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]types.AttributeValue, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return &dynamodb.ScanOutput{Items: out, Count: int32(len(out))}, nil
}

type countingFeed struct {
	mu        sync.Mutex
	published []string
}

func (f *countingFeed) Publish(_ context.Context, collection string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, collection)
	return nil
}

func (f *countingFeed) Subscribe(context.Context, []string, func(string)) (func(), error) {
	return func() {}, nil
}

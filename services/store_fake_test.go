package services

import (
	"context"
	"errors"
	"reflect"

	"mysterydinner_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeStore is an in-memory DinnerStore with per-table fault injection.
type fakeStore struct {
	puts    map[string][]interface{}
	batches map[string][][]types.WriteRequest

	failPuts    map[string]error // table -> PutItem error
	failBatches map[string]error // table -> BatchWriteItems error

	// When putErr is set, the next putFailuresLeft PutItem calls fail.
	putErr          error
	putFailuresLeft int

	scanErr  error
	scanPool []models.UserProfile // rows "in" the UserProfiles table
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		puts:        map[string][]interface{}{},
		batches:     map[string][][]types.WriteRequest{},
		failPuts:    map[string]error{},
		failBatches: map[string]error{},
	}
}

func (f *fakeStore) PutItem(ctx context.Context, tableName string, item interface{}) error {
	if f.putFailuresLeft > 0 {
		f.putFailuresLeft--
		return f.putErr
	}
	if err := f.failPuts[tableName]; err != nil {
		return err
	}
	f.puts[tableName] = append(f.puts[tableName], item)
	return nil
}

func (f *fakeStore) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	if tableName != models.UserProfilesTable {
		return nil, errors.New("item not found")
	}
	keyAttr, ok := key["userId"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("item not found")
	}
	for _, profile := range f.scanPool {
		if profile.UserID == keyAttr.Value {
			return attributevalue.MarshalMap(profile)
		}
	}
	return nil, errors.New("item not found")
}

func (f *fakeStore) BatchWriteItems(ctx context.Context, tableName string, writeRequests []types.WriteRequest) error {
	if err := f.failBatches[tableName]; err != nil {
		return err
	}
	f.batches[tableName] = append(f.batches[tableName], writeRequests)
	return nil
}

// ScanWithFilter replays scanPool through the same marshalling and
// filtering path the real scan uses.
func (f *fakeStore) ScanWithFilter(
	ctx context.Context,
	tableName string,
	filterFunc func(map[string]types.AttributeValue) bool,
	matchFields map[string]types.AttributeValue,
	result interface{},
) error {
	if f.scanErr != nil {
		return f.scanErr
	}

	var filtered []map[string]types.AttributeValue
	for _, profile := range f.scanPool {
		item, err := attributevalue.MarshalMap(profile)
		if err != nil {
			return err
		}
		matches := true
		for field, want := range matchFields {
			if !reflect.DeepEqual(item[field], want) {
				matches = false
				break
			}
		}
		if !matches {
			continue
		}
		if filterFunc != nil && !filterFunc(item) {
			continue
		}
		filtered = append(filtered, item)
	}

	return attributevalue.UnmarshalListOfMaps(filtered, result)
}

// batchItemCount totals the items written to one table across all batches.
func (f *fakeStore) batchItemCount(tableName string) int {
	count := 0
	for _, batch := range f.batches[tableName] {
		count += len(batch)
	}
	return count
}
